package sdk

import (
	"strings"

	"droidsdk/internal/buildenv"
)

// HomeSource identifies which fallback step produced a resolved SDK home.
type HomeSource string

const (
	SourceConfigured  HomeSource = "configured"
	SourceEnvironment HomeSource = "environment"
	SourceFallback    HomeSource = "fallback"
)

// homeEnvVars are the environment variables commonly pointing at an SDK
// installation, in precedence order.
var homeEnvVars = []string{
	"ANDROID_SDK_ROOT",
	"ANDROID_SDK_HOME",
	"ANDROID_HOME",
	"ANDROID_SDK",
}

// HomeEnvVars returns the environment variable names consulted during home
// resolution, in precedence order.
func HomeEnvVars() []string {
	return append([]string(nil), homeEnvVars...)
}

// Locate determines the SDK root to use. The explicitly configured home wins
// if it validates non-fatally; otherwise each known environment variable is
// tried in order. When every candidate fails, the configured value is
// returned as-is so that error reporting happens at tool-invocation time
// rather than here.
//
// Must run on the machine whose filesystem holds the SDK; cross-machine
// callers go through agent.ExecutionContext.Locate.
func Locate(env buildenv.Snapshot, configuredHome string) (string, HomeSource) {
	if usableHome(configuredHome) {
		return configuredHome, SourceConfigured
	}

	for _, key := range homeEnvVars {
		if home := env.Get(key); usableHome(home) {
			return home, SourceEnvironment
		}
	}

	return configuredHome, SourceFallback
}

// LocateHome is Locate without source attribution.
func LocateHome(env buildenv.Snapshot, configuredHome string) string {
	home, _ := Locate(env, configuredHome)
	return home
}

func usableHome(dir string) bool {
	if strings.TrimSpace(dir) == "" {
		return false
	}
	return !Validate(dir, false, AllowAll).Fatal()
}
