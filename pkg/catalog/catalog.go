// Package catalog builds the Attack-Vector Catalog (spec §4.2): a mapping
// from CVE id to access vector, description, and CPE class, merged from one
// or more global CVE metadata files.
package catalog

import (
	"github.com/cyw0ng95/attackgraph/internal/jsonx"
	"github.com/cyw0ng95/attackgraph/pkg/cpe"
	"github.com/cyw0ng95/attackgraph/pkg/diagnostics"
)

// Record is the per-CVE catalog entry.
type Record struct {
	AttackVectorString string
	Description        string
	CPEClass           cpe.Class
}

// Catalog maps CVE id to its merged Record.
type Catalog map[string]Record

type rawDocument struct {
	CVEItems []rawItem `json:"CVE_Items"`
}

type rawItem struct {
	CVE struct {
		CVEDataMeta struct {
			ID string `json:"ID"`
		} `json:"CVE_data_meta"`
		Description struct {
			DescriptionData []struct {
				Value string `json:"value"`
			} `json:"description_data"`
		} `json:"description"`
	} `json:"cve"`
	Impact struct {
		BaseMetricV2 *struct {
			CVSSV2 struct {
				VectorString string `json:"vectorString"`
			} `json:"cvssV2"`
		} `json:"baseMetricV2"`
	} `json:"impact"`
	Configurations struct {
		Nodes []rawNode `json:"nodes"`
	} `json:"configurations"`
}

type rawNode struct {
	CPE      []rawCPE  `json:"cpe"`
	Children []rawNode `json:"children"`
}

type rawCPE struct {
	CPE22URI string `json:"cpe22Uri"`
}

// Load parses a single catalog document's raw JSON bytes and merges its
// usable entries into the Catalog, recording malformed entries into diags
// rather than failing the whole document (spec §4.2 "malformed catalog
// files are reported and skipped individually").
func (c Catalog) Load(data []byte, diags *diagnostics.Diagnostics) {
	var doc rawDocument
	if err := jsonx.Unmarshal(data, &doc); err != nil {
		diags.Addf("catalog", "malformed catalog document: %v", err)
		return
	}

	for _, item := range doc.CVEItems {
		id := item.CVE.CVEDataMeta.ID
		if id == "" {
			diags.Add("catalog", "skipped entry with no CVE id")
			continue
		}
		if item.Impact.BaseMetricV2 == nil {
			diags.Addf("catalog", "skipped %s: no baseMetricV2", id)
			continue
		}

		record := Record{
			AttackVectorString: item.Impact.BaseMetricV2.CVSSV2.VectorString,
			CPEClass:           cpe.Unknown,
		}
		if len(item.CVE.Description.DescriptionData) > 0 {
			record.Description = item.CVE.Description.DescriptionData[0].Value
		}
		if uri, ok := firstCPEURI(item.Configurations.Nodes); ok {
			record.CPEClass = cpe.FromURI(uri)
		}

		c[id] = record
	}
}

// firstCPEURI returns the first CPE 2.2 URI found among the given nodes,
// falling back to each node's first child (one level deep only, per
// spec §4.2's "optional one-level children fallback").
func firstCPEURI(nodes []rawNode) (string, bool) {
	for _, node := range nodes {
		if len(node.CPE) > 0 && node.CPE[0].CPE22URI != "" {
			return node.CPE[0].CPE22URI, true
		}
		if len(node.Children) > 0 {
			child := node.Children[0]
			if len(child.CPE) > 0 && child.CPE[0].CPE22URI != "" {
				return child.CPE[0].CPE22URI, true
			}
		}
	}
	return "", false
}

// New builds an empty Catalog ready for Load calls.
func New() Catalog {
	return make(Catalog)
}

// Lookup implements pkg/vulnerability.CatalogLookup.
func (c Catalog) Lookup(id string) (description string, class cpe.Class, attackVectorString string, ok bool) {
	rec, found := c[id]
	if !found {
		return "", cpe.Unknown, "", false
	}
	return rec.Description, rec.CPEClass, rec.AttackVectorString, true
}
