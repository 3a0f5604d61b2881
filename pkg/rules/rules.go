// Package rules implements rewrite rules (spec §3, §4.4): precondition and
// postcondition rules that classify a normalized vulnerability by the
// privilege level required to exploit it and the privilege level it grants.
package rules

import (
	"strings"

	"github.com/cyw0ng95/attackgraph/pkg/cpe"
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
)

// Impacts is the postcondition-only "impacts" filter.
type Impacts string

const (
	AllComplete Impacts = "ALL_COMPLETE"
	Partial     Impacts = "PARTIAL"
	AnyNone     Impacts = "ANY_NONE"
)

// CPEFilter restricts a rule's applicability by vulnerability CPE class.
type CPEFilter string

const (
	CPEUnknown         CPEFilter = "unknown"
	CPEOperatingSystem CPEFilter = "operating_system"
	CPEHardware        CPEFilter = "hardware"
)

// PreconditionRule matches a vulnerability either by vocabulary pattern or
// by a CVSS-filter triple, never both (spec §3: "precondition rules may
// take either form").
type PreconditionRule struct {
	Name             string
	CPE              CPEFilter
	Vocabulary       []string
	AccessVector     string
	Authentication   string
	AccessComplexity string
	Precondition     privilege.Level
}

// usesCVSSFilter reports whether this rule is in CVSS-filter mode rather
// than vocabulary mode — determined by which fields were populated, since
// the two modes are mutually exclusive per spec §4.4.
func (r PreconditionRule) usesCVSSFilter() bool {
	return len(r.Vocabulary) == 0
}

// PostconditionRule always matches by vocabulary, plus the impacts filter
// (spec §4.4).
type PostconditionRule struct {
	Name          string
	CPE           CPEFilter
	Vocabulary    []string
	Impacts       Impacts
	Postcondition privilege.Level
}

// matchesCPE applies the CPE filter shared by precondition and
// postcondition rules (spec §4.4 "CPE filter, applied first to every
// rule"): hardware rules additionally accept application CPE class, a
// documented historical quirk.
func matchesCPE(filter CPEFilter, class cpe.Class) bool {
	switch filter {
	case CPEOperatingSystem:
		return class == cpe.OperatingSystem
	case CPEHardware:
		return class == cpe.Hardware || class == cpe.Application
	default:
		return true
	}
}

// matchesVocabulary applies pattern semantics from spec §3: "?" matches
// anything, "A...B" requires both substrings present in any order, and a
// plain string is a substring match.
func matchesVocabulary(patterns []string, description string) bool {
	for _, pattern := range patterns {
		if pattern == "?" {
			return true
		}
		if before, after, ok := strings.Cut(pattern, "..."); ok {
			if strings.Contains(description, before) && strings.Contains(description, after) {
				return true
			}
			continue
		}
		if strings.Contains(description, pattern) {
			return true
		}
	}
	return false
}

// matchesImpacts applies the postcondition-only impacts filter (spec §4.4).
func matchesImpacts(filter Impacts, confidentiality, integrity string) bool {
	switch filter {
	case AllComplete:
		return confidentiality == "C" && integrity == "C"
	case AnyNone:
		return confidentiality == "N" || integrity == "N"
	case Partial:
		// "Anything less than total": in effect, every case that is not
		// ALL_COMPLETE and not ANY_NONE (spec §4.4).
		isAllComplete := confidentiality == "C" && integrity == "C"
		isAnyNone := confidentiality == "N" || integrity == "N"
		return !isAllComplete && !isAnyNone
	default:
		return false
	}
}

// matchesCVSSFilter applies the CVSS-filter precondition mode (spec §4.4).
func matchesCVSSFilter(r PreconditionRule, av, au, ac string) bool {
	if r.AccessVector != "" {
		if r.AccessVector == "LOCAL" {
			if av != "L" {
				return false
			}
		} else if av != "A" && av != "N" {
			return false
		}
	}
	if r.Authentication != "" {
		if r.Authentication == "NONE" {
			if au != "N" {
				return false
			}
		} else if au != "L" && au != "H" {
			return false
		}
	}
	if r.AccessComplexity != "" {
		if len(r.AccessComplexity) == 0 || ac == "" || r.AccessComplexity[0:1] != ac {
			return false
		}
	}
	return true
}
