package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectPaths captures canonical locations for a droidsdk project.
type ProjectPaths struct {
	Root       string
	ConfigFile string
	LogsDir    string
}

// Resolve determines the project root using the optional --project flag or
// the current working directory when the flag is empty.
func Resolve(projectFlag string) (ProjectPaths, error) {
	var (
		root string
		err  error
	)

	if projectFlag != "" {
		root, err = filepath.Abs(projectFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return ProjectPaths{}, fmt.Errorf("resolve project root: %w", err)
	}

	return ProjectPaths{
		Root:       root,
		ConfigFile: filepath.Join(root, "droidsdk.yaml"),
		LogsDir:    filepath.Join(root, "logs"),
	}, nil
}

// EnsureLogsDir creates the logs directory if missing.
func (p ProjectPaths) EnsureLogsDir() error {
	if err := os.MkdirAll(p.LogsDir, 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	return nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
