// Package reachability implements the breadth-first Reachability Engine
// (spec §4.6): it explores the (container, privilege) state space reachable
// from the external attacker and emits edges into a graphmodel.Assembler.
package reachability

import (
	"sort"

	"github.com/cyw0ng95/attackgraph/pkg/exploitability"
	"github.com/cyw0ng95/attackgraph/pkg/graphmodel"
	"github.com/cyw0ng95/attackgraph/pkg/privilege"
)

// Reserved container identifiers, per spec §3.
const (
	Outside    = "outside"
	DockerHost = "docker host"

	labelRootAccess = "root access"
	labelPrivileged = "privileged"
)

type state struct {
	container string
	level     privilege.Level
}

// Run explores the reachable state space starting from (outside, ADMIN)
// and emits every discovered edge into assembler.
//
// topology maps a container to its neighbors (spec §3's "Topology"); tables
// maps a container to its exploitability.Table; privilegedAccess maps a
// container to whether it can pivot to full host admin (spec §3
// "Privileged-access map"). Iteration over neighbors and vulnerabilities is
// sorted for deterministic output (spec §5 "Ordering guarantees").
func Run(topology map[string][]string, tables map[string]exploitability.Table, privilegedAccess map[string]bool, assembler *graphmodel.Assembler) {
	queue := []state{{container: Outside, level: privilege.Admin}}
	visited := map[state]bool{queue[0]: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := append([]string(nil), topology[current.container]...)
		if current.container != DockerHost {
			neighbors = append(neighbors, current.container)
		}
		sort.Strings(neighbors)

		for _, n := range neighbors {
			switch {
			case current.container == DockerHost:
				// A compromised host propagates full admin to every
				// reachable container, not only ones already at ADMIN.
				assembler.AddEdge(DockerHost, privilege.Admin, n, privilege.Admin, labelRootAccess)
				enqueue(&queue, visited, state{container: n, level: privilege.Admin})

			case n == DockerHost:
				if privilegedAccess[current.container] {
					assembler.AddEdge(current.container, current.level, DockerHost, privilege.Admin, labelPrivileged)
					enqueue(&queue, visited, state{container: DockerHost, level: privilege.Admin})
				}

			default:
				table, ok := tables[n]
				if !ok {
					continue
				}
				for _, vulnID := range sortedVulnIDs(table) {
					precond := table.Precondition[vulnID]
					postcond := table.Postcondition[vulnID]

					if current.level < precond {
						continue
					}

					crossContainer := n != current.container
					progresses := false
					if crossContainer {
						progresses = postcond != privilege.None
					} else {
						progresses = postcond > current.level
					}
					if !progresses {
						continue
					}

					assembler.AddEdge(current.container, current.level, n, postcond, vulnID)
					enqueue(&queue, visited, state{container: n, level: postcond})
				}
			}
		}
	}
}

func enqueue(queue *[]state, visited map[state]bool, s state) {
	if visited[s] {
		return
	}
	visited[s] = true
	*queue = append(*queue, s)
}

// sortedVulnIDs returns the vuln ids present in a container's
// exploitability table in deterministic order.
func sortedVulnIDs(table exploitability.Table) []string {
	ids := make([]string, 0, len(table.Precondition))
	for id := range table.Precondition {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
