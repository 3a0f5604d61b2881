// Package privilege implements the five-level privilege lattice shared by the
// rule engine and the reachability engine: a totally ordered set of attacker
// capability levels, with bidirectional name/value conversion, compare, and
// max.
package privilege

import (
	"fmt"

	"github.com/cyw0ng95/attackgraph/internal/assertx"
)

// Level is one of the five totally ordered privilege levels. VOS_USER and
// VOS_ADMIN denote privilege inside a containerized/virtual-OS context; USER
// and ADMIN denote host-level privilege.
type Level int

const (
	// None is the absence of any privilege.
	None Level = iota
	// VOSUser is user-level privilege inside a container.
	VOSUser
	// VOSAdmin is admin-level privilege inside a container.
	VOSAdmin
	// User is host-level user privilege.
	User
	// Admin is host-level admin privilege, the top of the lattice.
	Admin
)

// levelNames is indexed by Level; it is the single source of truth for both
// Name and Value so the two stay in sync.
var levelNames = [...]string{
	None:     "NONE",
	VOSUser:  "VOS_USER",
	VOSAdmin: "VOS_ADMIN",
	User:     "USER",
	Admin:    "ADMIN",
}

// outputNames is the rendering form used in node strings (spec §6), which
// uses spaces rather than underscores for the VOS levels.
var outputNames = [...]string{
	None:     "NONE",
	VOSUser:  "VOS USER",
	VOSAdmin: "VOS ADMIN",
	User:     "USER",
	Admin:    "ADMIN",
}

// nameToLevel is built once from levelNames (the underscored config form)
// plus the spaced outputNames, so either form is accepted on input.
var nameToLevel = func() map[string]Level {
	m := make(map[string]Level, len(levelNames)*2)
	for lvl, name := range levelNames {
		m[name] = Level(lvl)
	}
	for lvl, name := range outputNames {
		m[name] = Level(lvl)
	}
	return m
}()

// Valid reports whether lvl is one of the five defined levels.
func (lvl Level) Valid() bool {
	return lvl >= None && lvl <= Admin
}

// Name returns the config-form name of lvl (e.g. "VOS_USER"). Calling Name on
// an out-of-domain Level is a programming error: the five levels are a closed
// set and every caller inside this module constructs them from ByName or the
// constants above.
func (lvl Level) Name() string {
	assertx.Assertf(lvl.Valid(), "privilege: out-of-domain level %d", int(lvl))
	if !lvl.Valid() {
		panic(fmt.Sprintf("privilege: out-of-domain level %d", int(lvl)))
	}
	return levelNames[lvl]
}

// OutputName returns the node-string rendering form of lvl (e.g. "VOS USER"),
// per spec §6.
func (lvl Level) OutputName() string {
	assertx.Assertf(lvl.Valid(), "privilege: out-of-domain level %d", int(lvl))
	if !lvl.Valid() {
		panic(fmt.Sprintf("privilege: out-of-domain level %d", int(lvl)))
	}
	return outputNames[lvl]
}

// String implements fmt.Stringer as the config-form name.
func (lvl Level) String() string {
	return lvl.Name()
}

// ByName converts a privilege name (either the config form "VOS_USER" or the
// output form "VOS USER") to a Level. Unlike Name/OutputName, an unrecognized
// name is not a programming error — it may come from a rule file or a
// privileged-access map supplied by the caller — so it is reported via ok,
// never a panic.
func ByName(name string) (Level, bool) {
	lvl, ok := nameToLevel[name]
	return lvl, ok
}

// MustByName is a convenience for call sites (tests, scenario fixtures) that
// already know the name is one of the five valid levels.
func MustByName(name string) Level {
	lvl, ok := ByName(name)
	assertx.Assertf(ok, "privilege: unknown level name %q", name)
	return lvl
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func Compare(a, b Level) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Max returns the higher of a and b.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

// Min returns the lower of a and b.
func Min(a, b Level) Level {
	if a < b {
		return a
	}
	return b
}

// ErrUnknownLevel is wrapped into the caller-facing error when a
// caller-supplied rule names an unrecognized privilege level (spec §7,
// error kind 3: fatal, a configuration invariant violation surfaced to the
// caller rather than a panic).
var ErrUnknownLevel = fmt.Errorf("unknown privilege level name")
