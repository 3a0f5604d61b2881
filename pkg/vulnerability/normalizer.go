package vulnerability

import (
	"github.com/cyw0ng95/attackgraph/internal/jsonx"
	"github.com/cyw0ng95/attackgraph/pkg/cpe"
	"github.com/cyw0ng95/attackgraph/pkg/cvss"
	"github.com/cyw0ng95/attackgraph/pkg/diagnostics"
)

// sourceCatalog marks a record whose description/CPE class was taken from
// the Attack-Vector Catalog; sourceScan marks one that kept the scan's own
// fields because the CVE id was not in the catalog (spec §4.3 Step 2).
const (
	sourceCatalog = "catalog"
	sourceScan    = "scan"
)

type rawReport struct {
	Layers []struct {
		Layer struct {
			Features []struct {
				Vulnerabilities []rawVuln `json:"Vulnerabilities"`
			} `json:"Features"`
		} `json:"Layer"`
	} `json:"Layers"`
}

type rawVuln struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Metadata    struct {
		NVD struct {
			CVSSv2 struct {
				Vectors string `json:"Vectors"`
			} `json:"CVSSv2"`
		} `json:"NVD"`
	} `json:"Metadata"`
}

// Normalize parses a container's scan report (spec §6 "Vulnerability scan
// input") and merges each distinct vulnerability with the catalog, per
// spec §4.3. Malformed reports are recorded into diags and yield an empty
// result rather than failing (spec §7 kind 1/5: a missing or malformed
// vulnerability file is never fatal).
func Normalize(data []byte, lookup CatalogLookup, diags *diagnostics.Diagnostics) map[string]Record {
	result := make(map[string]Record)
	if len(data) == 0 {
		return result
	}

	var report rawReport
	if err := jsonx.Unmarshal(data, &report); err != nil {
		diags.Addf("normalizer", "malformed scan report: %v", err)
		return result
	}

	seen := make(map[string]bool)
	for _, layer := range report.Layers {
		for _, feature := range layer.Layer.Features {
			for _, v := range feature.Vulnerabilities {
				if v.Name == "" || seen[v.Name] {
					continue
				}
				seen[v.Name] = true
				result[v.Name] = merge(v, lookup, diags)
			}
		}
	}
	return result
}

func merge(v rawVuln, lookup CatalogLookup, diags *diagnostics.Diagnostics) Record {
	record := Record{
		ID:          v.Name,
		Description: v.Description,
		CPEClass:    cpe.Unknown,
		Source:      sourceScan,
	}

	vectorString := v.Metadata.NVD.CVSSv2.Vectors

	if lookup != nil {
		if desc, class, catalogVectorString, ok := lookup.Lookup(v.Name); ok {
			record.Description = desc
			record.CPEClass = class
			record.Source = sourceCatalog
			if catalogVectorString != "" {
				vectorString = catalogVectorString
			}
		}
	}

	if vectorString != "" {
		vec := cvss.Parse(vectorString)
		if vec.IsZero() {
			diags.Addf("normalizer", "unparseable CVSS vector for %s", v.Name)
		} else {
			record.AttackVector = vec
		}
	}

	return record
}
