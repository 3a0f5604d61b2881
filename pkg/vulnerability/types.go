// Package vulnerability implements the Vulnerability Normalizer (spec §4.3):
// it flattens a container's scan report into a CVE→record mapping and
// merges it with the Attack-Vector Catalog.
package vulnerability

import (
	"github.com/cyw0ng95/attackgraph/pkg/cpe"
	"github.com/cyw0ng95/attackgraph/pkg/cvss"
)

// Record is a single normalized vulnerability, per spec §3: "{ id,
// description, cpe_class, attack_vector?, source }". AttackVector's
// IsZero() reports true when the CVSS vector was missing from both the
// catalog and the scan.
type Record struct {
	ID           string
	Description  string
	CPEClass     cpe.Class
	AttackVector cvss.Vector
	Source       string
}

// Catalog mapping is a subset of pkg/catalog.Catalog used by Normalize —
// expressed as an interface so this package does not need to import
// pkg/catalog directly.
type CatalogLookup interface {
	Lookup(id string) (description string, class cpe.Class, attackVectorString string, ok bool)
}
