// Package buildenv provides the merged environment view a build operates
// under: host environment variables overlaid with job-specific variables.
package buildenv

import (
	"os"
	"strings"
)

// Snapshot is an immutable view of variables in effect for one build.
// Captured fresh per build; never mutated after capture.
type Snapshot map[string]string

// Get returns the value for name, or "" when unset.
func (s Snapshot) Get(name string) string {
	return s[name]
}

// Provider supplies the two variable sources for a build. Either call may
// fail; failures degrade to an empty map rather than aborting the build.
type Provider interface {
	HostEnv() (map[string]string, error)
	JobVars() (map[string]string, error)
}

// Capture builds a snapshot from a provider. Job variables take precedence
// over host variables on key collision.
func Capture(p Provider) Snapshot {
	host, err := p.HostEnv()
	if err != nil {
		host = nil
	}
	job, err := p.JobVars()
	if err != nil {
		job = nil
	}
	return Merge(host, job)
}

// Merge combines host and job variables into a snapshot, job winning on
// collision.
func Merge(host, job map[string]string) Snapshot {
	snap := make(Snapshot, len(host)+len(job))
	for k, v := range host {
		snap[k] = v
	}
	for k, v := range job {
		snap[k] = v
	}
	return snap
}

// OSEnv returns the process environment as a variable map.
func OSEnv() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			vars[key] = value
		}
	}
	return vars
}
