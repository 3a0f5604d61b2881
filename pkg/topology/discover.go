// Package topology discovers a multi-container application's topology from
// a docker-compose.yml-shaped document (spec §4.8, a non-core
// collaborator). Grounded on original_source's topology_parser.py and
// reader.py: service-network adjacency becomes the topology map, and a
// service's "privileged" flag or mounted docker socket becomes its
// privileged-access entry.
package topology

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	dockerSocketMount = "/var/run/docker.sock:/var/run/docker.sock"
	outsideContainer  = "outside"
	dockerHost        = "docker host"
)

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Image      string   `yaml:"image"`
	Privileged bool     `yaml:"privileged"`
	Networks   []string `yaml:"networks"`
	Volumes    []string `yaml:"volumes"`
	Ports      []string `yaml:"ports"`
}

// Discovery is the output of Discover: the three collaborator products
// spec §4.8 names.
type Discovery struct {
	// ServiceContainerNames maps compose service name to its container
	// name (the declared image if present, else the service name itself).
	ServiceContainerNames map[string]string

	// Topology maps container to neighbors, always including "outside" and
	// "docker host" (spec §6 "Topology input").
	Topology map[string][]string

	// PrivilegedAccess maps container to whether it can pivot to host
	// admin.
	PrivilegedAccess map[string]bool
}

// Discover parses a docker-compose.yml-shaped YAML document into a
// Discovery. Services with no declared networks are treated as sharing a
// single implicit network with every other service (spec §4.8: "if no
// networks are declared, all services are assumed to share the default
// bridge").
func Discover(data []byte) (Discovery, error) {
	var file composeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Discovery{}, err
	}

	names := containerNames(file.Services)

	d := Discovery{
		ServiceContainerNames: names,
		Topology:              buildTopology(file.Services, names),
		PrivilegedAccess:      buildPrivilegedAccess(file.Services, names),
	}
	return d, nil
}

// containerNames implements get_mapping_service_to_image_names: a service
// maps to its declared image if present, else to the service name itself.
func containerNames(services map[string]composeService) map[string]string {
	names := make(map[string]string, len(services))
	for service, cfg := range services {
		if cfg.Image != "" {
			names[service] = cfg.Image
			continue
		}
		names[service] = service
	}
	return names
}

func buildTopology(services map[string]composeService, names map[string]string) map[string][]string {
	topology := map[string][]string{
		outsideContainer: {},
		dockerHost:       {},
	}

	for service := range services {
		topology[names[service]] = []string{}
	}

	for first, firstCfg := range services {
		firstContainer := names[first]
		firstNetworks := effectiveNetworks(firstCfg)

		for second, secondCfg := range services {
			if first == second {
				continue
			}
			secondNetworks := effectiveNetworks(secondCfg)
			if len(firstCfg.Networks) == 0 || len(secondCfg.Networks) == 0 || sharesNetwork(firstNetworks, secondNetworks) {
				topology[firstContainer] = appendUnique(topology[firstContainer], names[second])
			}
		}

		if len(firstCfg.Ports) > 0 {
			topology[outsideContainer] = appendUnique(topology[outsideContainer], firstContainer)
			topology[firstContainer] = appendUnique(topology[firstContainer], outsideContainer)
		}

		topology[firstContainer] = appendUnique(topology[firstContainer], dockerHost)
		topology[dockerHost] = appendUnique(topology[dockerHost], firstContainer)
	}

	return topology
}

// effectiveNetworks returns the service's declared networks, or the
// sentinel "exposed" network when none are declared — matching the
// original's "if it does not, it means it is exposed to every other
// service" fallback.
func effectiveNetworks(cfg composeService) []string {
	if len(cfg.Networks) == 0 {
		return []string{"exposed"}
	}
	return cfg.Networks
}

func sharesNetwork(a, b []string) bool {
	for _, na := range a {
		for _, nb := range b {
			if na == nb {
				return true
			}
		}
	}
	return false
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// buildPrivilegedAccess implements check_priviledged_access, resolving the
// documented socker_mounted typo (spec §9 Design Note / SPEC_FULL §4.8):
// a mounted docker socket DOES confer privileged access, a deliberate
// change from the original's silently-dead branch.
func buildPrivilegedAccess(services map[string]composeService, names map[string]string) map[string]bool {
	privileged := make(map[string]bool, len(services))
	for service, cfg := range services {
		container := names[service]
		if cfg.Privileged {
			privileged[container] = true
			continue
		}
		privileged[container] = hasDockerSocketMount(cfg.Volumes)
	}
	return privileged
}

func hasDockerSocketMount(volumes []string) bool {
	for _, volume := range volumes {
		if strings.Contains(volume, dockerSocketMount) {
			return true
		}
	}
	return false
}
