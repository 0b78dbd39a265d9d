package buildenv

import (
	"regexp"
	"strings"
)

var macroPattern = regexp.MustCompile(`\$([A-Za-z0-9_]+|\{[A-Za-z0-9_]+\})`)

// Expand substitutes ${name} (and $name) tokens in the given string in two
// sequential passes. The first pass resolves each token against the
// environment overlaid with build variables, so build variables take final
// precedence on name collisions. The second pass resolves tokens introduced
// by first-pass substitution against build variables only. There is no
// recursive expansion beyond the two passes; unresolvable tokens are left
// verbatim.
//
// A blank token expands to no value: the second return is false and callers
// can distinguish "unset" from "set to empty".
func Expand(envVars, buildVars map[string]string, token string) (string, bool) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", false
	}

	result := replaceMacro(trimmed, Merge(envVars, buildVars))
	result = replaceMacro(result, buildVars)
	return result, true
}

// replaceMacro performs one left-to-right scan, substituting each token whose
// name is present in vars. Substituted values are not re-scanned.
func replaceMacro(s string, vars map[string]string) string {
	return macroPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1:]
		if strings.HasPrefix(name, "{") {
			name = name[1 : len(name)-1]
		}
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
