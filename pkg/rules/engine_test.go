package rules

import (
	"testing"

	"github.com/cyw0ng95/attackgraph/pkg/cpe"
	"github.com/cyw0ng95/attackgraph/pkg/cvss"
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
	"github.com/cyw0ng95/attackgraph/pkg/vulnerability"
)

func rec(description string, class cpe.Class, vector string) vulnerability.Record {
	return vulnerability.Record{
		Description: description,
		CPEClass:    class,
		AttackVector: func() cvss.Vector {
			if vector == "" {
				return cvss.Vector{}
			}
			return cvss.Parse(vector)
		}(),
	}
}

func TestDefaultsWhenUnclassified(t *testing.T) {
	e := New(nil, nil)
	c := e.Classify(rec("nothing matches", cpe.Unknown, "AV:N/AC:L/Au:N/C:N/I:N/A:N"))
	if c.Precondition != privilege.None {
		t.Errorf("Precondition = %v, want NONE", c.Precondition)
	}
	if c.Postcondition != privilege.Admin {
		t.Errorf("Postcondition = %v, want ADMIN", c.Postcondition)
	}
}

func TestVocabularyPrecondTakesMax(t *testing.T) {
	e := New([]PreconditionRule{
		{Name: "low", Vocabulary: []string{"remote"}, Precondition: privilege.VOSUser},
		{Name: "high", Vocabulary: []string{"remote"}, Precondition: privilege.User},
	}, nil)
	c := e.Classify(rec("remote code execution", cpe.Unknown, ""))
	if c.Precondition != privilege.User {
		t.Errorf("Precondition = %v, want USER (max across matches)", c.Precondition)
	}
}

func TestVocabularyPatternBothSubstrings(t *testing.T) {
	e := New([]PreconditionRule{
		{Name: "combo", Vocabulary: []string{"remote...execution"}, Precondition: privilege.User},
	}, nil)
	matched := e.Classify(rec("execution of remote code", cpe.Unknown, ""))
	if matched.Precondition != privilege.User {
		t.Errorf("expected both-substrings-any-order pattern to match, got %v", matched.Precondition)
	}
	unmatched := e.Classify(rec("remote only", cpe.Unknown, ""))
	if unmatched.Precondition != privilege.None {
		t.Errorf("expected no match without both substrings, got %v", unmatched.Precondition)
	}
}

func TestCVSSFilterPrecondition(t *testing.T) {
	e := New([]PreconditionRule{
		{Name: "local-only", AccessVector: "LOCAL", AccessComplexity: "L", Precondition: privilege.VOSUser},
	}, nil)

	local := e.Classify(rec("desc", cpe.Unknown, "AV:L/AC:L/Au:N/C:P/I:P/A:N"))
	if local.Precondition != privilege.VOSUser {
		t.Errorf("local AV should match: got %v", local.Precondition)
	}

	network := e.Classify(rec("desc", cpe.Unknown, "AV:N/AC:L/Au:N/C:P/I:P/A:N"))
	if network.Precondition != privilege.None {
		t.Errorf("network AV should not match LOCAL-only rule: got %v", network.Precondition)
	}
}

func TestCPEFilterHardwareAcceptsApplication(t *testing.T) {
	e := New([]PreconditionRule{
		{Name: "hw", CPE: CPEHardware, Vocabulary: []string{"?"}, Precondition: privilege.User},
	}, nil)

	app := e.Classify(rec("desc", cpe.Application, ""))
	if app.Precondition != privilege.User {
		t.Errorf("hardware filter should accept application CPE class: got %v", app.Precondition)
	}

	os := e.Classify(rec("desc", cpe.OperatingSystem, ""))
	if os.Precondition != privilege.None {
		t.Errorf("hardware filter should reject operating_system CPE class: got %v", os.Precondition)
	}
}

func TestPostconditionTakesMin(t *testing.T) {
	e := New(nil, []PostconditionRule{
		{Name: "high", Vocabulary: []string{"?"}, Impacts: AllComplete, Postcondition: privilege.Admin},
		{Name: "low", Vocabulary: []string{"?"}, Impacts: AllComplete, Postcondition: privilege.VOSUser},
	})
	c := e.Classify(rec("desc", cpe.Unknown, "AV:N/AC:L/Au:N/C:C/I:C/A:C"))
	if c.Postcondition != privilege.VOSUser {
		t.Errorf("Postcondition = %v, want VOS_USER (min across matches)", c.Postcondition)
	}
}

func TestImpactsFilters(t *testing.T) {
	allComplete := New(nil, []PostconditionRule{
		{Vocabulary: []string{"?"}, Impacts: AllComplete, Postcondition: privilege.VOSUser},
	})
	if c := allComplete.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:C/I:C/A:C")); c.Postcondition != privilege.VOSUser {
		t.Errorf("ALL_COMPLETE should match C=C,I=C: got %v", c.Postcondition)
	}
	if c := allComplete.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:P/I:C/A:C")); c.Postcondition != privilege.Admin {
		t.Errorf("ALL_COMPLETE should not match C=P: got %v", c.Postcondition)
	}

	anyNone := New(nil, []PostconditionRule{
		{Vocabulary: []string{"?"}, Impacts: AnyNone, Postcondition: privilege.VOSUser},
	})
	if c := anyNone.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:N/I:P/A:N")); c.Postcondition != privilege.VOSUser {
		t.Errorf("ANY_NONE should match C=N: got %v", c.Postcondition)
	}

	partial := New(nil, []PostconditionRule{
		{Vocabulary: []string{"?"}, Impacts: Partial, Postcondition: privilege.VOSUser},
	})
	if c := partial.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:P/I:P/A:N")); c.Postcondition != privilege.VOSUser {
		t.Errorf("PARTIAL should match C=P,I=P: got %v", c.Postcondition)
	}
	if c := partial.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:C/I:C/A:C")); c.Postcondition != privilege.Admin {
		t.Errorf("PARTIAL should not match ALL_COMPLETE: got %v", c.Postcondition)
	}
	if c := partial.Classify(rec("d", cpe.Unknown, "AV:N/AC:L/Au:N/C:N/I:P/A:N")); c.Postcondition != privilege.Admin {
		t.Errorf("PARTIAL should not match ANY_NONE: got %v", c.Postcondition)
	}
}
