package render

import (
	"strings"
	"testing"
)

func TestDOTRendersNodesAndEdges(t *testing.T) {
	nodes := map[string]bool{"outside(ADMIN)": true, "c1(USER)": true}
	edges := map[string][]string{
		"outside(ADMIN)|c1(USER)": {"CVE-2020-1"},
	}

	out, err := DOT(nodes, edges)
	if err != nil {
		t.Fatalf("DOT error: %v", err)
	}

	if !strings.Contains(out, `"outside(ADMIN)";`) || !strings.Contains(out, `"c1(USER)";`) {
		t.Errorf("expected both nodes rendered, got:\n%s", out)
	}
	if !strings.Contains(out, `"outside(ADMIN)" -> "c1(USER)" [label="CVE-2020-1"];`) {
		t.Errorf("expected edge statement, got:\n%s", out)
	}
}

func TestDOTMultiLabelEdgeRendersSeparateStatements(t *testing.T) {
	nodes := map[string]bool{"c1(USER)": true, "c2(ADMIN)": true}
	edges := map[string][]string{
		"c1(USER)|c2(ADMIN)": {"v1", "v2"},
	}

	out, err := DOT(nodes, edges)
	if err != nil {
		t.Fatalf("DOT error: %v", err)
	}

	if !strings.Contains(out, `"c1(USER)" -> "c2(ADMIN)" [label="v1"];`) {
		t.Errorf("expected v1 edge statement, got:\n%s", out)
	}
	if !strings.Contains(out, `"c1(USER)" -> "c2(ADMIN)" [label="v2"];`) {
		t.Errorf("expected v2 edge statement, got:\n%s", out)
	}
}

func TestDOTEmptyGraph(t *testing.T) {
	out, err := DOT(map[string]bool{}, map[string][]string{})
	if err != nil {
		t.Fatalf("DOT error: %v", err)
	}
	if !strings.Contains(out, "digraph attack_graph {") {
		t.Errorf("expected digraph header, got:\n%s", out)
	}
}
