// Package attackgraph ties together the catalog, normalizer, rule engine,
// exploitability table, and reachability engine into the single entry
// point a caller uses to build an attack graph (spec §2 data flow).
package attackgraph

import (
	"time"

	"github.com/cyw0ng95/attackgraph/internal/errx"
	"github.com/cyw0ng95/attackgraph/pkg/diagnostics"
	"github.com/cyw0ng95/attackgraph/pkg/exploitability"
	"github.com/cyw0ng95/attackgraph/pkg/graphmodel"
	"github.com/cyw0ng95/attackgraph/pkg/reachability"
	"github.com/cyw0ng95/attackgraph/pkg/rules"
	"github.com/cyw0ng95/attackgraph/pkg/vulnerability"
)

// Input bundles every piece the core needs for one build (spec §6 "External
// interfaces"), already decoded into Go values — decoding catalog/scan/rule
// JSON documents is the caller's (or a collaborator's) job; this package
// takes structured data, never raw bytes, so it stays independent of any
// particular wire format.
type Input struct {
	// Topology maps container to its neighbors. Must include "outside" and
	// "docker host" (spec §6).
	Topology map[string][]string

	// Vulnerabilities maps container to its normalized vulnerability set
	// (spec §4.3's output, already merged against the catalog).
	Vulnerabilities map[string]map[string]vulnerability.Record

	// Preconditions and Postconditions are the rule sets (spec §4.4).
	Preconditions  []rules.PreconditionRule
	Postconditions []rules.PostconditionRule

	// PrivilegedAccess maps container to whether it can pivot to host admin
	// (spec §3 "Privileged-access map").
	PrivilegedAccess map[string]bool
}

// Result is everything a Build call returns: the graph, accumulated
// non-fatal diagnostics, and timing telemetry (spec §6 "Timing telemetry").
type Result struct {
	Nodes                 map[string]bool
	Edges                 map[string][]string
	EdgeOrder             []string
	Diagnostics           diagnostics.Diagnostics
	PreprocessingDuration time.Duration
	ReachabilityDuration  time.Duration
}

const (
	containerOutside    = reachability.Outside
	containerDockerHost = reachability.DockerHost
)

// Build runs the full pipeline: classify every container's vulnerabilities
// through the rule engine into an exploitability table, then explore
// reachability via BFS. It validates referenced container identifiers up
// front (spec §7 kind 2): any container named in Topology's neighbor lists
// or in PrivilegedAccess that is not itself a topology key is a fatal error.
func Build(input Input) (Result, error) {
	if err := validateContainers(input); err != nil {
		return Result{}, err
	}

	var diags diagnostics.Diagnostics

	preprocessStart := time.Now()
	engine := rules.New(input.Preconditions, input.Postconditions)
	tables := make(map[string]exploitability.Table, len(input.Vulnerabilities))
	for container, vulns := range input.Vulnerabilities {
		if container == containerOutside || container == containerDockerHost {
			continue
		}
		tables[container] = exploitability.Build(vulns, engine)
	}
	preprocessingDuration := time.Since(preprocessStart)

	assembler := graphmodel.New()
	reachStart := time.Now()
	reachability.Run(input.Topology, tables, input.PrivilegedAccess, assembler)
	reachabilityDuration := time.Since(reachStart)

	return Result{
		Nodes:                 assembler.Nodes(),
		Edges:                 assembler.Edges(),
		EdgeOrder:             assembler.EdgeOrder(),
		Diagnostics:           diags,
		PreprocessingDuration: preprocessingDuration,
		ReachabilityDuration:  reachabilityDuration,
	}, nil
}

// validateContainers implements spec §7 kind 2: any container referenced as
// a neighbor, or as a PrivilegedAccess key, that never appears as a
// Topology key itself is an unknown-container error.
func validateContainers(input Input) error {
	known := make(map[string]bool, len(input.Topology))
	for container := range input.Topology {
		known[container] = true
	}

	for _, neighbors := range input.Topology {
		for _, n := range neighbors {
			if !known[n] {
				return errx.New(errx.CodeUnknownContainer, "topology references unknown container", n)
			}
		}
	}
	for container := range input.PrivilegedAccess {
		if !known[container] {
			return errx.New(errx.CodeUnknownContainer, "privileged-access map references unknown container", container)
		}
	}
	return nil
}
