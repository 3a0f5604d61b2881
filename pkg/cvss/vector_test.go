package cvss

import "testing"

func TestParseBasic(t *testing.T) {
	v := Parse("AV:L/AC:M/Au:N/C:P/I:P/A:N")
	if v.AccessVector() != "L" {
		t.Errorf("AccessVector() = %q, want L", v.AccessVector())
	}
	if v.AccessComplexity() != "M" {
		t.Errorf("AccessComplexity() = %q, want M", v.AccessComplexity())
	}
	if v.Authentication() != "N" {
		t.Errorf("Authentication() = %q, want N", v.Authentication())
	}
	if v.ConfidentialityImpact() != "P" {
		t.Errorf("ConfidentialityImpact() = %q, want P", v.ConfidentialityImpact())
	}
	if v.IntegrityImpact() != "P" {
		t.Errorf("IntegrityImpact() = %q, want P", v.IntegrityImpact())
	}
	if val, _ := v.Get(FieldAvailabilityImpact); val != "N" {
		t.Errorf("Get(A) = %q, want N", val)
	}
}

func TestParseBracketed(t *testing.T) {
	v := Parse("(AV:N/AC:L/Au:N/C:C/I:C/A:C)")
	if v.AccessVector() != "N" || v.ConfidentialityImpact() != "C" {
		t.Errorf("bracketed parse failed: %+v", v)
	}
}

func TestParseEmpty(t *testing.T) {
	v := Parse("")
	if !v.IsZero() {
		t.Error("expected IsZero for empty input")
	}
}

func TestParseSkipsMalformedSegments(t *testing.T) {
	v := Parse("AV:L//AC:M/garbage/Au:")
	if v.AccessVector() != "L" || v.AccessComplexity() != "M" {
		t.Errorf("expected well-formed segments to still parse: %+v", v)
	}
	if _, ok := v.Get(FieldAuthentication); ok {
		t.Error("expected empty-value segment to be skipped")
	}
}

func TestRoundTrip(t *testing.T) {
	original := "AV:L/AC:M/Au:N/C:P/I:P/A:N"
	v := Parse(original)
	reparsed := Parse(v.String())

	if v.String() != reparsed.String() {
		t.Errorf("round trip not stable: %q vs %q", v.String(), reparsed.String())
	}

	for _, field := range []string{FieldAccessVector, FieldAccessComplexity, FieldAuthentication, FieldConfidentialityImpact, FieldIntegrityImpact, FieldAvailabilityImpact} {
		origVal, origOK := v.Get(field)
		newVal, newOK := reparsed.Get(field)
		if origOK != newOK || origVal != newVal {
			t.Errorf("field %s not preserved across round trip: %q/%v vs %q/%v", field, origVal, origOK, newVal, newOK)
		}
	}
}
