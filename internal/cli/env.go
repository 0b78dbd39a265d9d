package cli

import (
	"droidsdk/internal/buildenv"
	"droidsdk/internal/config"
	"droidsdk/internal/paths"
)

func loadProject() (paths.ProjectPaths, config.Config, error) {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return paths.ProjectPaths{}, config.Config{}, err
	}
	cfg, err := config.Load(pp.ConfigFile)
	if err != nil {
		return pp, config.Config{}, err
	}
	return pp, cfg, nil
}

func captureEnv(cfg config.Config) (map[string]string, buildenv.Snapshot) {
	hostEnv := buildenv.OSEnv()
	return hostEnv, buildenv.Merge(hostEnv, cfg.Job.Variables)
}

// expandedHome applies macro expansion to the configured SDK home, so a value
// like ${ANDROID_ROOT}/sdk resolves before discovery runs.
func expandedHome(cfg config.Config, hostEnv map[string]string) string {
	home, ok := buildenv.Expand(hostEnv, cfg.Job.Variables, cfg.SDK.Home)
	if !ok {
		return ""
	}
	return home
}
