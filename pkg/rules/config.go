package rules

import (
	"github.com/cyw0ng95/attackgraph/internal/errx"
	"github.com/cyw0ng95/attackgraph/internal/jsonx"
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
)

// configDocument is the on-disk rule-file shape: a flat JSON document naming
// privilege levels by their config-form string name (spec §6's rule
// vocabulary), decoded through internal/jsonx so the rule file benefits from
// the same sonic/encoding-json build-tag switch as catalog and scan input.
type configDocument struct {
	Preconditions  []preconditionEntry  `json:"preconditions"`
	Postconditions []postconditionEntry `json:"postconditions"`
}

type preconditionEntry struct {
	Name             string   `json:"name"`
	CPE              string   `json:"cpe"`
	Vocabulary       []string `json:"vocabulary"`
	AccessVector     string   `json:"access_vector"`
	Authentication   string   `json:"authentication"`
	AccessComplexity string   `json:"access_complexity"`
	Precondition     string   `json:"precondition"`
}

type postconditionEntry struct {
	Name          string   `json:"name"`
	CPE           string   `json:"cpe"`
	Vocabulary    []string `json:"vocabulary"`
	Impacts       string   `json:"impacts"`
	Postcondition string   `json:"postcondition"`
}

// LoadConfig decodes a rule file into the engine's rule types. A rule naming
// an unrecognized privilege level is a fatal configuration error (spec §7,
// error kind 3), not a Diagnostics entry, since a malformed rule file is a
// caller-configuration defect rather than noisy input data.
func LoadConfig(data []byte) ([]PreconditionRule, []PostconditionRule, error) {
	var doc configDocument
	if err := jsonx.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}

	pre := make([]PreconditionRule, 0, len(doc.Preconditions))
	for _, e := range doc.Preconditions {
		level, ok := privilege.ByName(e.Precondition)
		if !ok {
			return nil, nil, errx.Wrap(errx.CodeUnknownPrivilege, "precondition rule names unknown privilege level", e.Precondition, privilege.ErrUnknownLevel)
		}
		pre = append(pre, PreconditionRule{
			Name:             e.Name,
			CPE:              CPEFilter(e.CPE),
			Vocabulary:       e.Vocabulary,
			AccessVector:     e.AccessVector,
			Authentication:   e.Authentication,
			AccessComplexity: e.AccessComplexity,
			Precondition:     level,
		})
	}

	post := make([]PostconditionRule, 0, len(doc.Postconditions))
	for _, e := range doc.Postconditions {
		level, ok := privilege.ByName(e.Postcondition)
		if !ok {
			return nil, nil, errx.Wrap(errx.CodeUnknownPrivilege, "postcondition rule names unknown privilege level", e.Postcondition, privilege.ErrUnknownLevel)
		}
		if len(e.Vocabulary) == 0 {
			return nil, nil, errx.New(errx.CodeInvalidRule, "postcondition rule missing vocabulary", e.Name)
		}
		post = append(post, PostconditionRule{
			Name:          e.Name,
			CPE:           CPEFilter(e.CPE),
			Vocabulary:    e.Vocabulary,
			Impacts:       Impacts(e.Impacts),
			Postcondition: level,
		})
	}

	return pre, post, nil
}
