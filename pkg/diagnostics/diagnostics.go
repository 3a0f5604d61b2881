// Package diagnostics accumulates non-fatal issues encountered while
// building an attack graph: skipped catalog entries, malformed catalog
// documents and scan reports, unparseable CVSS vectors. These never abort a
// build (per spec §7 kind 1); they are collected here so the caller's collaborator
// can render them through its own logger instead of this package printing
// directly.
package diagnostics

import "fmt"

// Entry is a single recorded issue.
type Entry struct {
	Stage  string
	Detail string
}

// Diagnostics is an ordered collection of Entry values. The zero value is
// ready to use.
type Diagnostics struct {
	entries []Entry
}

// Add records an issue under the given stage name.
func (d *Diagnostics) Add(stage, detail string) {
	d.entries = append(d.entries, Entry{Stage: stage, Detail: detail})
}

// Addf records an issue with a formatted detail message.
func (d *Diagnostics) Addf(stage, format string, args ...interface{}) {
	d.Add(stage, fmt.Sprintf(format, args...))
}

// Entries returns the recorded issues in the order they were added.
func (d *Diagnostics) Entries() []Entry {
	return d.entries
}

// Len reports the number of recorded issues.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// Merge appends another Diagnostics' entries onto this one, preserving order.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.entries = append(d.entries, other.entries...)
}
