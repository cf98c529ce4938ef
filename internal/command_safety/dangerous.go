package command_safety

import "strings"

// CommandMightBeDangerous reports whether the command is potentially
// destructive and must never be auto-approved, whatever the policy says.
func CommandMightBeDangerous(command []string) bool {
	if isDangerousToCallWithExec(command) {
		return true
	}
	for _, cmd := range ParseShellLcPlainCommands(command) {
		if isDangerousToCallWithExec(cmd) {
			return true
		}
	}
	return false
}

func isDangerousToCallWithExec(command []string) bool {
	if len(command) == 0 {
		return false
	}

	switch command[0] {
	case "rm":
		return len(command) > 1 && (command[1] == "-f" || command[1] == "-rf")
	case "sudo":
		return len(command) > 1 && isDangerousToCallWithExec(command[1:])
	}

	idx, subcommand, found := findGitSubcommand(command, []string{"reset", "rm", "branch", "push", "clean"})
	if !found {
		return false
	}
	args := command[idx+1:]

	switch subcommand {
	case "reset", "rm":
		return true
	case "branch":
		return gitBranchDeletes(args)
	case "push":
		return gitPushIsForcedOrDeletes(args)
	case "clean":
		return gitCleanIsForced(args)
	default:
		return false
	}
}

func gitBranchDeletes(args []string) bool {
	for _, arg := range args {
		if arg == "-d" || arg == "-D" || arg == "--delete" || strings.HasPrefix(arg, "--delete=") {
			return true
		}
		if shortFlagGroupContains(arg, 'd') || shortFlagGroupContains(arg, 'D') {
			return true
		}
	}
	return false
}

func gitPushIsForcedOrDeletes(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--force", "--force-with-lease", "--force-if-includes", "--delete", "-f", "-d":
			return true
		}
		if strings.HasPrefix(arg, "--force-with-lease=") ||
			strings.HasPrefix(arg, "--force-if-includes=") ||
			strings.HasPrefix(arg, "--delete=") {
			return true
		}
		if shortFlagGroupContains(arg, 'f') || shortFlagGroupContains(arg, 'd') {
			return true
		}
		// +refspec force-updates; :dst deletes the remote ref.
		if len(arg) > 1 && (arg[0] == '+' || arg[0] == ':') {
			return true
		}
	}
	return false
}

func gitCleanIsForced(args []string) bool {
	for _, arg := range args {
		if arg == "--force" || arg == "-f" || strings.HasPrefix(arg, "--force=") {
			return true
		}
		if shortFlagGroupContains(arg, 'f') {
			return true
		}
	}
	return false
}
