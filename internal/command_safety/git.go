package command_safety

import (
	"path/filepath"
	"strings"
)

// Git needs special handling in both directions: some subcommands are
// read-only and safe to auto-run, others destroy work, and global options
// like -c can make any of them execute arbitrary external commands.

// findGitSubcommand locates the first positional token of a git command,
// skipping global options, and reports it if it is one of the wanted
// subcommands. Scanning stops at the first positional token either way so a
// branch named "reset" is not mistaken for the subcommand.
func findGitSubcommand(command []string, wanted []string) (idx int, name string, found bool) {
	if len(command) == 0 || filepath.Base(command[0]) != "git" {
		return 0, "", false
	}

	skipNext := false
	for i := 1; i < len(command); i++ {
		if skipNext {
			skipNext = false
			continue
		}
		arg := command[i]

		if gitGlobalOptionHasInlineValue(arg) {
			continue
		}
		if gitGlobalOptionTakesValue(arg) {
			skipNext = true
			continue
		}
		if arg == "--" || strings.HasPrefix(arg, "-") {
			continue
		}

		for _, sub := range wanted {
			if arg == sub {
				return i, arg, true
			}
		}
		return 0, "", false
	}
	return 0, "", false
}

func gitGlobalOptionTakesValue(arg string) bool {
	switch arg {
	case "-C", "-c", "--config-env", "--exec-path", "--git-dir", "--namespace", "--super-prefix", "--work-tree":
		return true
	}
	return false
}

func gitGlobalOptionHasInlineValue(arg string) bool {
	for _, prefix := range []string{
		"--config-env=", "--exec-path=", "--git-dir=", "--namespace=", "--super-prefix=", "--work-tree=",
	} {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	// -C<path> or -c<key=value> with the value attached.
	if (strings.HasPrefix(arg, "-C") || strings.HasPrefix(arg, "-c")) && len(arg) > 2 {
		return true
	}
	return false
}

// gitHasConfigOverride reports whether the command carries -c/--config-env,
// which can redirect git through arbitrary external programs (pagers,
// editors, diff drivers).
func gitHasConfigOverride(command []string) bool {
	for _, arg := range command {
		if arg == "-c" || arg == "--config-env" {
			return true
		}
		if strings.HasPrefix(arg, "-c") && len(arg) > 2 {
			return true
		}
		if strings.HasPrefix(arg, "--config-env=") {
			return true
		}
	}
	return false
}

// shortFlagGroupContains reports whether a grouped short flag like "-df"
// contains the target letter.
func shortFlagGroupContains(arg string, target byte) bool {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return false
	}
	return strings.IndexByte(arg[1:], target) >= 0
}
