package sdk

import (
	"os"
	"path/filepath"
)

// RootFromPath detects an SDK root from the directories listed in pathVar.
// The first directory where every minimal tool (adb and emulator) has a
// matching executable wins; its parent is assumed to be the SDK root, since
// the winning directory is tools or platform-tools. Returns "" when no single
// directory holds the full subset, even if the tools exist spread across
// several directories.
func RootFromPath(isUnix bool, pathVar string) string {
	for _, dir := range filepath.SplitList(pathVar) {
		if !isDir(dir) {
			continue
		}

		found := 0
		for _, name := range pathTools {
			def := toolDefinitions[name]
			if _, err := os.Stat(filepath.Join(dir, def.Executable(isUnix))); err == nil {
				found++
			}
		}

		if found == len(pathTools) {
			return filepath.Dir(dir)
		}
	}

	return ""
}
