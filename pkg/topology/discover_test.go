package topology

import "testing"

const composeFixture = `
services:
  web:
    image: example/web:latest
    ports:
      - "80:80"
    networks:
      - front
  api:
    networks:
      - front
      - back
  db:
    privileged: true
    networks:
      - back
    volumes:
      - db-data:/var/lib/db
  agent:
    volumes:
      - /var/run/docker.sock:/var/run/docker.sock
`

func TestDiscoverContainerNames(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if d.ServiceContainerNames["web"] != "example/web:latest" {
		t.Errorf("web container name = %q, want image name", d.ServiceContainerNames["web"])
	}
	if d.ServiceContainerNames["api"] != "api" {
		t.Errorf("api container name = %q, want service name fallback", d.ServiceContainerNames["api"])
	}
}

func TestDiscoverNetworkAdjacency(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if !contains(d.Topology["api"], "db") {
		t.Errorf("expected api adjacent to db via shared 'back' network, got %v", d.Topology["api"])
	}
	if contains(d.Topology["example/web:latest"], "db") {
		t.Errorf("did not expect web adjacent to db (no shared network), got %v", d.Topology["example/web:latest"])
	}
}

func TestDiscoverExposedWithoutNetworks(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	agent := d.ServiceContainerNames["agent"]
	if !contains(d.Topology["api"], agent) {
		t.Errorf("expected agent (no networks declared) exposed to api, got %v", d.Topology["api"])
	}
}

func TestDiscoverPortsReachFromOutside(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	web := d.ServiceContainerNames["web"]
	if !contains(d.Topology["outside"], web) {
		t.Errorf("expected outside adjacent to web (ports declared), got %v", d.Topology["outside"])
	}
	if !contains(d.Topology[web], "outside") {
		t.Errorf("expected web adjacent to outside, got %v", d.Topology[web])
	}
}

func TestDiscoverEveryContainerReachesDockerHost(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	for service, container := range d.ServiceContainerNames {
		if !contains(d.Topology[container], "docker host") {
			t.Errorf("expected %s (%s) adjacent to docker host, got %v", service, container, d.Topology[container])
		}
		if !contains(d.Topology["docker host"], container) {
			t.Errorf("expected docker host adjacent to %s (%s)", service, container)
		}
	}
}

func TestDiscoverPrivilegedAccess(t *testing.T) {
	d, err := Discover([]byte(composeFixture))
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if !d.PrivilegedAccess["db"] {
		t.Error("expected db privileged (privileged: true)")
	}
	if !d.PrivilegedAccess["agent"] {
		t.Error("expected agent privileged (docker socket mounted, typo fixed)")
	}
	if d.PrivilegedAccess["api"] {
		t.Error("did not expect api privileged")
	}
}

func TestDiscoverMalformedYAML(t *testing.T) {
	_, err := Discover([]byte("services: [this is not a mapping"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
