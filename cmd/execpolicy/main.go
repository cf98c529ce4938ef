// Command execpolicy checks proposed commands against the execution policy.
//
// Usage:
//
//	execpolicy [-policy dir] [-require-safe] check <program> [args...]
//
// On a match the resulting execution plan is printed as JSON on stdout.
// Policy failures exit non-zero with the typed reason on stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tunacode/tunacode-go/internal/command_safety"
	"github.com/tunacode/tunacode-go/internal/execpolicy"
	"github.com/tunacode/tunacode-go/internal/version"
)

func main() {
	policyDir := flag.String("policy", "", "directory of additional *.policy files merged over the built-in policy")
	requireSafe := flag.Bool("require-safe", false, "also run the safety assessment and fail unless the command auto-approves")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GitCommit)
		return
	}

	args := flag.Args()
	if len(args) < 2 || args[0] != "check" {
		usage()
		os.Exit(2)
	}

	policy, err := loadPolicy(*policyDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "execpolicy: %v\n", err)
		os.Exit(1)
	}

	call := execpolicy.NewExecCall(args[1], args[2:]...)

	if *requireSafe {
		assessor := command_safety.NewAssessor(policy)
		verdict := assessor.Assess(append([]string{call.Program}, call.Args...))
		if verdict.Assessment != command_safety.AssessmentAutoApprove {
			fmt.Fprintf(os.Stderr, "execpolicy: %s: %s\n", verdict.Assessment, verdict.Reason)
			os.Exit(1)
		}
	}

	matched, err := policy.Check(call)
	if err != nil {
		fmt.Fprintf(os.Stderr, "execpolicy: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matched.Exec); err != nil {
		fmt.Fprintf(os.Stderr, "execpolicy: %v\n", err)
		os.Exit(1)
	}
}

func loadPolicy(dir string) (*execpolicy.Policy, error) {
	if dir == "" {
		return execpolicy.DefaultPolicy()
	}
	return execpolicy.LoadPolicyDir(dir)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: execpolicy [-policy dir] [-require-safe] [-version] check <program> [args...]")
	flag.PrintDefaults()
}
