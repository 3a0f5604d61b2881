package rules

import (
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
	"github.com/cyw0ng95/attackgraph/pkg/vulnerability"
)

// Engine holds the configured precondition and postcondition rule sets and
// applies them to normalized vulnerabilities (spec §4.4).
type Engine struct {
	Preconditions  []PreconditionRule
	Postconditions []PostconditionRule
}

// New builds an Engine from the two rule mappings described in spec §6
// ("Rules input"). The caller is expected to have already resolved
// privilege-level names via pkg/privilege.ByName — an unknown name is a
// fatal configuration error (spec §7 kind 3) and is the caller's
// responsibility to surface as a BuildError, not this package's.
func New(preconditions []PreconditionRule, postconditions []PostconditionRule) *Engine {
	return &Engine{Preconditions: preconditions, Postconditions: postconditions}
}

// Classification is the result of applying the engine to one vulnerability.
type Classification struct {
	Precondition  privilege.Level
	Postcondition privilege.Level
}

// defaultPrecondition and defaultPostcondition are applied when no rule
// matched a vulnerability at all (spec §4.4 "Defaults").
const (
	defaultPrecondition  = privilege.None
	defaultPostcondition = privilege.Admin
)

// Classify applies every precondition and postcondition rule to v,
// returning the (max precondition, min postcondition) pair. Per spec
// §4.4's last paragraph, a vulnerability with no parsed attack vector is
// never classified — the caller must skip it entirely rather than call
// Classify.
func (e *Engine) Classify(v vulnerability.Record) Classification {
	result := Classification{Precondition: defaultPrecondition, Postcondition: defaultPostcondition}

	matchedPre := false
	av := v.AttackVector.AccessVector()
	ac := v.AttackVector.AccessComplexity()
	au := v.AttackVector.Authentication()
	ci := v.AttackVector.ConfidentialityImpact()
	ii := v.AttackVector.IntegrityImpact()

	for _, rule := range e.Preconditions {
		if !matchesCPE(rule.CPE, v.CPEClass) {
			continue
		}

		matched := false
		if rule.usesCVSSFilter() {
			matched = matchesCVSSFilter(rule, av, au, ac)
		} else {
			matched = matchesVocabulary(rule.Vocabulary, v.Description)
		}
		if !matched {
			continue
		}

		if !matchedPre || rule.Precondition > result.Precondition {
			result.Precondition = rule.Precondition
			matchedPre = true
		}
	}

	matchedPost := false
	for _, rule := range e.Postconditions {
		if !matchesCPE(rule.CPE, v.CPEClass) {
			continue
		}
		if !matchesVocabulary(rule.Vocabulary, v.Description) {
			continue
		}
		if !matchesImpacts(rule.Impacts, ci, ii) {
			continue
		}

		if !matchedPost || rule.Postcondition < result.Postcondition {
			result.Postcondition = rule.Postcondition
			matchedPost = true
		}
	}

	return result
}
