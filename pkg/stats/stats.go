// Package stats computes diagnostic summary statistics over an emitted
// attack graph (spec §4.10, a non-core collaborator). Grounded on
// original_source/main.py's print_graph_properties (node/edge counts,
// degree centrality, average in/out-degree, weak connectivity). No
// third-party library in the example corpus models a labeled multigraph
// the way this system needs, so the arithmetic is implemented directly
// over the core's (Nodes, Edges) output.
package stats

import "strings"

// Report holds the summary statistics computed over one attack graph.
type Report struct {
	NodeCount int
	EdgeCount int

	// DegreeCentrality maps node to its normalized total degree
	// (in-degree + out-degree) / (n - 1), where every label of a
	// multi-label edge counts as one edge.
	DegreeCentrality map[string]float64

	AverageDegreeCentrality float64

	InDegree         map[string]int
	OutDegree        map[string]int
	AverageInDegree  float64
	AverageOutDegree float64

	// WeaklyConnected reports whether the graph forms a single weakly
	// connected component (treating every edge as undirected). A graph
	// with zero or one node counts as connected.
	WeaklyConnected bool
}

// Compute derives a Report from an assembled graph. edges is keyed by
// "src|dst" (graphmodel.EdgeKey); the number of DOT-rendered edge
// statements (one per label) is what EdgeCount counts, matching the
// original's edge-per-label accounting.
func Compute(nodes map[string]bool, edges map[string][]string) Report {
	r := Report{
		DegreeCentrality: make(map[string]float64, len(nodes)),
		InDegree:         make(map[string]int, len(nodes)),
		OutDegree:        make(map[string]int, len(nodes)),
	}

	for n := range nodes {
		r.NodeCount++
		r.InDegree[n] = 0
		r.OutDegree[n] = 0
	}

	adjacency := make(map[string]map[string]bool, len(nodes))
	for n := range nodes {
		adjacency[n] = make(map[string]bool)
	}

	for key, labels := range edges {
		src, dst, ok := splitEdgeKey(key)
		if !ok {
			continue
		}
		r.EdgeCount += len(labels)
		r.OutDegree[src] += len(labels)
		r.InDegree[dst] += len(labels)

		if adjacency[src] != nil {
			adjacency[src][dst] = true
		}
		if adjacency[dst] != nil {
			adjacency[dst][src] = true
		}
	}

	denominator := float64(r.NodeCount - 1)
	var centralitySum float64
	for n := range nodes {
		degree := r.InDegree[n] + r.OutDegree[n]
		var centrality float64
		if denominator > 0 {
			centrality = float64(degree) / denominator
		}
		r.DegreeCentrality[n] = centrality
		centralitySum += centrality
	}

	var inSum, outSum float64
	for n := range nodes {
		inSum += float64(r.InDegree[n])
		outSum += float64(r.OutDegree[n])
	}

	if r.NodeCount > 0 {
		r.AverageDegreeCentrality = centralitySum / float64(r.NodeCount)
		r.AverageInDegree = inSum / float64(r.NodeCount)
		r.AverageOutDegree = outSum / float64(r.NodeCount)
	}

	r.WeaklyConnected = isWeaklyConnected(nodes, adjacency)

	return r
}

func isWeaklyConnected(nodes map[string]bool, adjacency map[string]map[string]bool) bool {
	if len(nodes) <= 1 {
		return true
	}

	var start string
	for n := range nodes {
		start = n
		break
	}

	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for neighbor := range adjacency[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				stack = append(stack, neighbor)
			}
		}
	}

	return len(visited) == len(nodes)
}

func splitEdgeKey(key string) (src, dst string, ok bool) {
	parts := strings.SplitN(key, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
