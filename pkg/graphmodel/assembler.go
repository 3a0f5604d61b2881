package graphmodel

import "github.com/cyw0ng95/attackgraph/pkg/privilege"

// Assembler maintains the deduplicated node set and the edge-label
// multimap, plus the seen-edges set used by the anti-parallel-edge rule
// (spec §4.7).
type Assembler struct {
	nodes     map[string]bool
	edges     map[string][]string
	edgeOrder []string
	seenEdges map[string]bool
}

// New returns an empty Assembler ready for AddEdge calls.
func New() *Assembler {
	return &Assembler{
		nodes:     make(map[string]bool),
		edges:     make(map[string][]string),
		seenEdges: make(map[string]bool),
	}
}

// AddEdge forms the full node strings for (srcContainer, srcLevel) and
// (dstContainer, dstLevel), and appends label to their edge-key's label
// list — unless the reverse edge key was already emitted, in which case
// the call is a no-op (spec §4.6's anti-parallel-edge rule: "if the
// reverse B→A has already been emitted... drop the new edge").
func (a *Assembler) AddEdge(srcContainer string, srcLevel privilege.Level, dstContainer string, dstLevel privilege.Level, label string) {
	src := NodeString(srcContainer, srcLevel)
	dst := NodeString(dstContainer, dstLevel)

	key := EdgeKey(src, dst)
	reverseKey := EdgeKey(dst, src)
	if a.seenEdges[reverseKey] {
		return
	}

	a.nodes[src] = true
	a.nodes[dst] = true

	if _, exists := a.edges[key]; !exists {
		a.edgeOrder = append(a.edgeOrder, key)
	}
	a.edges[key] = append(a.edges[key], label)
	a.seenEdges[key] = true
}

// Nodes returns the set of node strings emitted so far.
func (a *Assembler) Nodes() map[string]bool {
	return a.nodes
}

// Edges returns the edge-key → ordered label list map.
func (a *Assembler) Edges() map[string][]string {
	return a.edges
}

// EdgeOrder returns edge keys in the order they were first created —
// useful for deterministic output rendering.
func (a *Assembler) EdgeOrder() []string {
	return a.edgeOrder
}
