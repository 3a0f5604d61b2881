// Package graphmodel implements the attack graph's node/edge representation
// and the Graph Assembler (spec §4.7). Adapted from the teacher's
// pkg/graph, but without the teacher's mutex: the core engine is
// single-threaded per invocation (spec §5), so there is no concurrent
// access to guard against.
package graphmodel

import (
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
)

// NodeString renders a (container, privilege) pair to the output form
// "container(PRIVILEGE_NAME)" — spec §6: node strings use PRIVILEGE_NAME in
// {NONE, VOS USER, VOS ADMIN, USER, ADMIN}.
func NodeString(container string, level privilege.Level) string {
	return container + "(" + level.OutputName() + ")"
}

// EdgeKey renders the assembler's edge-map key "src_node|dst_node".
func EdgeKey(src, dst string) string {
	return src + "|" + dst
}
