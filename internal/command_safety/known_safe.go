package command_safety

import (
	"path/filepath"
	"strings"
)

// IsKnownSafeCommand reports whether the command is read-only and can be
// auto-approved without a policy entry. This is the heuristic fallback for
// programs the policy table does not cover; the list is deliberately short
// and every conditional entry errs toward "not safe".
func IsKnownSafeCommand(command []string) bool {
	if isSafeToCallWithExec(command) {
		return true
	}

	// A bash -lc script is safe only if every decomposed command is.
	if cmds := ParseShellLcPlainCommands(command); len(cmds) > 0 {
		for _, cmd := range cmds {
			if !isSafeToCallWithExec(cmd) {
				return false
			}
		}
		return true
	}
	return false
}

func isSafeToCallWithExec(command []string) bool {
	if len(command) == 0 {
		return false
	}

	switch filepath.Base(command[0]) {
	case "cat", "cd", "cut", "echo", "expr", "false", "grep", "head", "id",
		"ls", "nl", "numfmt", "paste", "pwd", "rev", "seq", "stat", "tac",
		"tail", "tr", "true", "uname", "uniq", "wc", "which", "whoami":
		return true
	case "base64":
		return base64IsSafe(command)
	case "find":
		return findIsSafe(command)
	case "rg":
		return rgIsSafe(command)
	case "git":
		return gitIsSafe(command)
	case "sed":
		return sedIsSafe(command)
	default:
		return false
	}
}

// base64 is read-only unless it writes via -o/--output.
func base64IsSafe(command []string) bool {
	for _, arg := range command[1:] {
		if arg == "-o" || arg == "--output" || strings.HasPrefix(arg, "--output=") {
			return false
		}
		if strings.HasPrefix(arg, "-o") && arg != "-o" {
			return false
		}
	}
	return true
}

// find is read-only unless it executes or deletes.
func findIsSafe(command []string) bool {
	for _, arg := range command {
		switch arg {
		case "-exec", "-execdir", "-ok", "-okdir", "-delete",
			"-fls", "-fprint", "-fprint0", "-fprintf":
			return false
		}
	}
	return true
}

// rg can spawn external programs or decompress archives.
func rgIsSafe(command []string) bool {
	for _, arg := range command {
		switch arg {
		case "--search-zip", "-z":
			return false
		}
		for _, opt := range []string{"--pre", "--hostname-bin"} {
			if arg == opt || strings.HasPrefix(arg, opt+"=") {
				return false
			}
		}
	}
	return true
}

func gitIsSafe(command []string) bool {
	if gitHasConfigOverride(command) {
		return false
	}

	idx, subcommand, found := findGitSubcommand(command, []string{"status", "log", "diff", "show", "branch"})
	if !found {
		return false
	}
	args := command[idx+1:]

	switch subcommand {
	case "status", "log", "diff", "show":
		return gitArgsAreReadOnly(args)
	case "branch":
		return gitArgsAreReadOnly(args) && gitBranchIsListOnly(args)
	default:
		return false
	}
}

func gitArgsAreReadOnly(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--output", "--ext-diff", "--textconv", "--exec", "--paginate":
			return false
		}
		if strings.HasPrefix(arg, "--output=") || strings.HasPrefix(arg, "--exec=") {
			return false
		}
	}
	return true
}

func gitBranchIsListOnly(args []string) bool {
	if len(args) == 0 {
		return true
	}
	sawListFlag := false
	for _, arg := range args {
		switch arg {
		case "--list", "-l", "--show-current", "-a", "--all", "-r", "--remotes",
			"-v", "-vv", "--verbose":
			sawListFlag = true
		default:
			if strings.HasPrefix(arg, "--format=") {
				sawListFlag = true
			} else {
				// Anything else may create, rename, or delete branches.
				return false
			}
		}
	}
	return sawListFlag
}

// sed is safe only in the exact form `sed -n {N|M,N}p [file]`.
func sedIsSafe(command []string) bool {
	if len(command) < 3 || len(command) > 4 {
		return false
	}
	if command[1] != "-n" {
		return false
	}
	return isSedPrintRange(command[2])
}

// isSedPrintRange matches /^(\d+,)?\d+p$/.
func isSedPrintRange(arg string) bool {
	core, ok := strings.CutSuffix(arg, "p")
	if !ok {
		return false
	}
	lo, hi, hasComma := strings.Cut(core, ",")
	if hasComma {
		return allDigits(lo) && allDigits(hi)
	}
	return allDigits(lo)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
