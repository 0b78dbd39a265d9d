package sdk

import (
	"os"
	"path/filepath"
	"strings"
)

// Descriptor represents one validated SDK installation. An empty Root means
// no root is known and tools are assumed reachable via PATH at execution
// time. Immutable once built; recomputed per invocation context because the
// build machine may differ between builds.
type Descriptor struct {
	Root          string `json:"root,omitempty"`
	PlatformTools bool   `json:"platform_tools"`
}

// HasKnownRoot reports whether the installation root was determined.
func (d Descriptor) HasKnownRoot() bool {
	return d.Root != ""
}

// BuildDescriptor inspects the machine it runs on and produces a descriptor
// for the SDK at configuredHome. With no configured home it falls back to
// PATH-based discovery. Returns nil when no usable SDK could be determined;
// a warning-level validation still yields a descriptor.
//
// Must run on the machine whose filesystem holds the SDK; cross-machine
// callers go through agent.ExecutionContext.Describe.
func BuildDescriptor(configuredHome string, isUnix bool) *Descriptor {
	root := strings.TrimSpace(configuredHome)
	if root == "" {
		root = RootFromPath(isUnix, os.Getenv("PATH"))
		if root == "" {
			return nil
		}
	} else if Validate(root, false, AllowAll).Fatal() {
		return nil
	}

	return &Descriptor{
		Root:          root,
		PlatformTools: isDir(filepath.Join(root, "platform-tools")),
	}
}
