package sdk

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Level classifies a validation outcome.
type Level string

const (
	LevelOK      Level = "ok"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Result captures a single validation verdict. Warnings surface to the user
// but do not block use of the candidate; only errors do.
type Result struct {
	Level   Level  `json:"level"`
	Message string `json:"message,omitempty"`
}

// Fatal reports whether the result disqualifies the candidate.
func (r Result) Fatal() bool {
	return r.Level == LevelError
}

func okResult() Result {
	return Result{Level: LevelOK}
}

func warningResult(msg string) Result {
	return Result{Level: LevelWarning, Message: msg}
}

func errorResult(msg string) Result {
	return Result{Level: LevelError, Message: msg}
}

// Permissions reports whether the caller may probe filesystem state in
// lenient validation contexts.
type Permissions interface {
	CanAdminister() bool
}

type allowAll struct{}

func (allowAll) CanAdminister() bool { return true }

// AllowAll grants administrative permission unconditionally. Build-time
// callers use it; interactive configuration callers supply their own check.
var AllowAll Permissions = allowAll{}

// Matches $VAR and ${VAR} placeholders that have not been expanded yet.
var variablePattern = regexp.MustCompile(`\$([A-Za-z0-9_]+|\{[A-Za-z0-9_]+\})`)

// Validate inspects a candidate SDK root directory and classifies it.
//
// Lenient mode is for interactive configuration: unprivileged callers get an
// unconditional ok (the check must not leak filesystem existence), as do
// empty paths and paths still containing unexpanded variables.
func Validate(dir string, lenient bool, perms Permissions) Result {
	if perms == nil {
		perms = AllowAll
	}
	if lenient && !perms.CanAdminister() {
		return okResult()
	}
	if lenient && dir == "" {
		return okResult()
	}

	if !isDir(dir) {
		if lenient && variablePattern.MatchString(dir) {
			return okResult()
		}
		return errorResult("not a valid directory")
	}

	// Items from both the tools and platforms directories are needed later.
	// platform-tools may also be required for newer SDKs, but individual
	// tools are checked for below.
	for _, name := range []string{"tools", "platforms"} {
		if !isDir(filepath.Join(dir, name)) {
			return errorResult("not a valid SDK directory")
		}
	}

	if countToolsFound(dir) < len(toolDefinitions) {
		return errorResult("required SDK tools not found")
	}

	// Not having downloaded any platforms yet is worth a warning, not an
	// error: the installation is usable but degraded.
	entries, err := os.ReadDir(filepath.Join(dir, "platforms"))
	if err == nil && len(entries) == 0 {
		return warningResult("no platforms installed yet")
	}

	return okResult()
}

// countToolsFound scans the tools and platform-tools directories for any
// platform variant of each registered tool, counting distinct tools. A tool
// counts once whether one or both platform variants are present.
func countToolsFound(root string) int {
	found := 0
	for _, name := range Known() {
		def := toolDefinitions[name]
		if toolPresent(root, def) {
			found++
		}
	}
	return found
}

func toolPresent(root string, def Tool) bool {
	for _, sub := range []string{"tools", "platform-tools"} {
		toolsDir := filepath.Join(root, sub)
		if !isDir(toolsDir) {
			continue
		}
		for _, executable := range []string{def.UnixName, def.WindowsName} {
			info, err := os.Stat(filepath.Join(toolsDir, executable))
			if err == nil && info.Mode().IsRegular() {
				return true
			}
		}
	}
	return false
}

func isDir(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
