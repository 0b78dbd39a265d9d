package sdk

import "unicode"

// Command is an executable invocation: the resolved executable path followed
// by its arguments. Never mutated after construction.
type Command []string

// ToolCommand builds the platform-correct invocation for a tool. The
// executable is fully qualified when the descriptor's root is known,
// otherwise the bare name is used and PATH lookup happens at execution time.
// Paths are joined with forward slashes because the command may be built on a
// different machine than the one that runs it.
func ToolCommand(d Descriptor, isUnix bool, tool Tool, extraArgs string) Command {
	var toolsDir string
	if d.HasKnownRoot() {
		if tool.PlatformTool && d.PlatformTools {
			toolsDir = d.Root + "/platform-tools/"
		} else {
			toolsDir = d.Root + "/tools/"
		}
	}

	cmd := Command{toolsDir + tool.Executable(isUnix)}
	cmd = append(cmd, Tokenize(extraArgs)...)
	return cmd
}

// Tokenize splits an argument string on whitespace, honoring single and
// double quotes and backslash escapes. Quotes group; they do not appear in
// the output tokens.
func Tokenize(s string) []string {
	var (
		tokens  []string
		current []rune
		quote   rune
		escaped bool
		inToken bool
	)

	for _, r := range s {
		switch {
		case escaped:
			current = append(current, r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current = append(current, r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, string(current))
				current = current[:0]
				inToken = false
			}
		default:
			current = append(current, r)
			inToken = true
		}
	}

	if escaped {
		current = append(current, '\\')
	}
	if inToken {
		tokens = append(tokens, string(current))
	}
	return tokens
}
