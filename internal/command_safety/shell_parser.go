package command_safety

import (
	"path/filepath"
	"strings"
)

// ParseShellLcPlainCommands decomposes ["bash", "-lc", script] (also zsh/sh,
// also plain "-c") into the individual commands of the script. It only
// accepts scripts made of word-only commands joined by the operators
// && || ; and |. Anything that could change state behind the policy's back
// (redirection, subshells, expansion, substitution, escaping, background
// jobs, variable assignment) makes the whole script unparseable and returns
// nil.
func ParseShellLcPlainCommands(command []string) [][]string {
	script, ok := shellScript(command)
	if !ok {
		return nil
	}
	return splitPlainCommands(script)
}

// shellScript extracts the script from a three-token shell -c/-lc invocation.
func shellScript(command []string) (string, bool) {
	if len(command) != 3 {
		return "", false
	}
	if command[1] != "-lc" && command[1] != "-c" {
		return "", false
	}
	switch filepath.Base(command[0]) {
	case "bash", "zsh", "sh":
		return command[2], true
	default:
		return "", false
	}
}

// splitPlainCommands scans the script byte by byte. There is no lookahead
// beyond one byte: every construct we accept is decidable locally, and
// everything else aborts the parse.
func splitPlainCommands(script string) [][]string {
	var (
		commands [][]string
		words    []string
	)
	pendingCommand := false // an operator was seen, a command must follow

	flush := func() bool {
		if len(words) == 0 {
			return false
		}
		commands = append(commands, words)
		words = nil
		return true
	}

	i := 0
	for i < len(script) {
		c := script[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '#':
			for i < len(script) && script[i] != '\n' {
				i++
			}

		case c == ';':
			if !flush() {
				return nil
			}
			pendingCommand = true
			i++

		case c == '&':
			// Only && is allowed; a lone & backgrounds the job.
			if i+1 >= len(script) || script[i+1] != '&' {
				return nil
			}
			if !flush() {
				return nil
			}
			pendingCommand = true
			i += 2

		case c == '|':
			if !flush() {
				return nil
			}
			pendingCommand = true
			if i+1 < len(script) && script[i+1] == '|' {
				i += 2
			} else {
				i++
			}

		default:
			word, next, ok := scanWord(script, i)
			if !ok {
				return nil
			}
			// A first word containing '=' is a variable assignment.
			if len(words) == 0 && strings.Contains(word, "=") {
				return nil
			}
			words = append(words, word)
			pendingCommand = false
			i = next
		}
	}

	if pendingCommand {
		return nil
	}
	if len(words) > 0 {
		commands = append(commands, words)
	}
	if len(commands) == 0 {
		return nil
	}
	return commands
}

// scanWord reads one word starting at i: a run of plain characters and
// quoted segments concatenated together, e.g. -g"*.py" or "/usr"'/'bin.
// Returns ok=false on any construct outside the safe subset.
func scanWord(script string, i int) (word string, next int, ok bool) {
	var b strings.Builder
	got := false

	for i < len(script) {
		c := script[i]

		if c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
			c == ';' || c == '&' || c == '|' || c == '#' {
			break
		}

		switch c {
		case '>', '<', '(', ')', '`', '$', '\\':
			// A backslash would make the scanned word differ from the
			// word the shell actually executes, so it is rejected too.
			return "", 0, false

		case '\'':
			end := strings.IndexByte(script[i+1:], '\'')
			if end < 0 {
				return "", 0, false
			}
			b.WriteString(script[i+1 : i+1+end])
			i += end + 2
			got = true

		case '"':
			j := i + 1
			for j < len(script) && script[j] != '"' {
				// No expansion, substitution, or escaping inside
				// double quotes.
				if script[j] == '$' || script[j] == '`' || script[j] == '\\' {
					return "", 0, false
				}
				j++
			}
			if j >= len(script) {
				return "", 0, false
			}
			b.WriteString(script[i+1 : j])
			i = j + 1
			got = true

		default:
			b.WriteByte(c)
			i++
			got = true
		}
	}

	if !got {
		return "", 0, false
	}
	return b.String(), i, true
}
