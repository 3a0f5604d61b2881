// Package exploitability builds the per-container Exploitability Table
// (spec §4.5): for every container other than the two reserved
// identifiers, a pair of vuln_id→privilege mappings describing what is
// required to exploit each vulnerability and what it grants.
package exploitability

import (
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
	"github.com/cyw0ng95/attackgraph/pkg/rules"
	"github.com/cyw0ng95/attackgraph/pkg/vulnerability"
)

// Table is the precondition/postcondition pair for one container's
// vulnerabilities.
type Table struct {
	Precondition  map[string]privilege.Level
	Postcondition map[string]privilege.Level
}

// Build classifies every vulnerability in vulns through the engine,
// skipping any with no parsed attack vector entirely (spec §4.4's final
// rule: "vulns with no parsed attack vector are skipped entirely — not
// emitted into the exploitability table").
func Build(vulns map[string]vulnerability.Record, engine *rules.Engine) Table {
	table := Table{
		Precondition:  make(map[string]privilege.Level),
		Postcondition: make(map[string]privilege.Level),
	}

	for id, v := range vulns {
		if v.AttackVector.IsZero() {
			continue
		}
		c := engine.Classify(v)
		table.Precondition[id] = c.Precondition
		table.Postcondition[id] = c.Postcondition
	}

	return table
}
