// Command attackgraph is the CLI adapter wiring the engine's collaborator
// packages into a single invocation: discover topology from a
// docker-compose.yml, normalize per-container vulnerability scans against
// an attack-vector catalog, classify them through a rule file, build the
// attack graph, and emit DOT + a statistics report. Grounded on the
// teacher's cmd/cve-meta, which also parses its arguments with the standard
// flag package and logs through the teacher's own logger rather than a
// third-party CLI framework (spec §5 "Configuration").
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyw0ng95/attackgraph/internal/logx"
	"github.com/cyw0ng95/attackgraph/pkg/attackgraph"
	"github.com/cyw0ng95/attackgraph/pkg/catalog"
	"github.com/cyw0ng95/attackgraph/pkg/diagnostics"
	"github.com/cyw0ng95/attackgraph/pkg/render"
	"github.com/cyw0ng95/attackgraph/pkg/rules"
	"github.com/cyw0ng95/attackgraph/pkg/stats"
	"github.com/cyw0ng95/attackgraph/pkg/topology"
	"github.com/cyw0ng95/attackgraph/pkg/vulnerability"
)

func main() {
	compose := flag.String("compose", "docker-compose.yml", "path to the docker-compose.yml describing the deployment")
	catalogPath := flag.String("catalog", "", "path to a global CVE metadata JSON file (NVD feed shape)")
	scanDir := flag.String("scan-dir", "", "directory containing <container>-vulnerabilities.json scan reports")
	rulesPath := flag.String("rules", "", "path to the precondition/postcondition rule file")
	dotOut := flag.String("dot-out", "", "path to write the rendered DOT graph (stdout if empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := logx.InfoLevel
	if *verbose {
		level = logx.DebugLevel
	}
	logx.Default.SetLevel(level)

	if err := run(*compose, *catalogPath, *scanDir, *rulesPath, *dotOut); err != nil {
		logx.Default.Error("%v", err)
		os.Exit(1)
	}
}

func run(composePath, catalogPath, scanDir, rulesPath, dotOut string) error {
	composeData, err := os.ReadFile(composePath)
	if err != nil {
		return fmt.Errorf("reading compose file: %w", err)
	}

	discovery, err := topology.Discover(composeData)
	if err != nil {
		return fmt.Errorf("discovering topology: %w", err)
	}
	logx.Default.Info("discovered %d containers from %s", len(discovery.ServiceContainerNames), composePath)

	cat := catalog.New()
	if catalogPath != "" {
		data, err := os.ReadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("reading catalog file: %w", err)
		}
		var diags diagnostics.Diagnostics
		cat.Load(data, &diags)
		logDiagnostics(diags)
	}

	preRules, postRules, err := loadRules(rulesPath)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	vulnsByContainer, err := loadScans(scanDir, discovery, cat)
	if err != nil {
		return fmt.Errorf("loading vulnerability scans: %w", err)
	}

	result, err := attackgraph.Build(attackgraph.Input{
		Topology:         discovery.Topology,
		Vulnerabilities:  vulnsByContainer,
		Preconditions:    preRules,
		Postconditions:   postRules,
		PrivilegedAccess: discovery.PrivilegedAccess,
	})
	if err != nil {
		return fmt.Errorf("building attack graph: %w", err)
	}
	for _, entry := range result.Diagnostics.Entries() {
		logx.Default.Warn("[%s] %s", entry.Stage, entry.Detail)
	}
	logx.Default.Info("preprocessing took %s, reachability search took %s", result.PreprocessingDuration, result.ReachabilityDuration)

	dot, err := render.DOT(result.Nodes, result.Edges)
	if err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}
	if dotOut == "" {
		fmt.Print(dot)
	} else if err := os.WriteFile(dotOut, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("writing DOT output: %w", err)
	}

	printStats(stats.Compute(result.Nodes, result.Edges))
	return nil
}

func loadRules(rulesPath string) ([]rules.PreconditionRule, []rules.PostconditionRule, error) {
	if rulesPath == "" {
		return nil, nil, nil
	}
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, nil, err
	}
	return rules.LoadConfig(data)
}

func loadScans(scanDir string, discovery topology.Discovery, cat catalog.Catalog) (map[string]map[string]vulnerability.Record, error) {
	result := make(map[string]map[string]vulnerability.Record)
	if scanDir == "" {
		return result, nil
	}

	for _, container := range discovery.ServiceContainerNames {
		scanPath := filepath.Join(scanDir, container+"-vulnerabilities.json")
		data, err := os.ReadFile(scanPath)
		if os.IsNotExist(err) {
			logx.Default.Debug("no scan report for %s at %s, skipping", container, scanPath)
			continue
		}
		if err != nil {
			return nil, err
		}

		var diags diagnostics.Diagnostics
		records := vulnerability.Normalize(data, cat, &diags)
		logDiagnostics(diags)
		result[container] = records
	}
	return result, nil
}

func logDiagnostics(diags diagnostics.Diagnostics) {
	for _, entry := range diags.Entries() {
		logx.Default.Warn("[%s] %s", entry.Stage, entry.Detail)
	}
}

func printStats(r stats.Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("*", 10) + "Attack Graph properties" + strings.Repeat("*", 10))
	fmt.Printf("Nodes: %d\n", r.NodeCount)
	fmt.Printf("Edges: %d\n", r.EdgeCount)
	fmt.Printf("Average degree centrality: %.4f\n", r.AverageDegreeCentrality)
	fmt.Printf("Average in-degree: %.4f\n", r.AverageInDegree)
	fmt.Printf("Average out-degree: %.4f\n", r.AverageOutDegree)
	fmt.Printf("Weakly connected: %v\n", r.WeaklyConnected)
}
