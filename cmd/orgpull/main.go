package main

import (
	"fmt"
	"os"
)

// version is stamped at release time via ldflags; default stays dev for local builds.
var version = "0.0.0-dev"

const (
	exitOK             = 0
	exitInvalidInput   = 1
	exitRuntimeFailure = 2
)

func main() {
	os.Exit(run(os.Args))
}

func run(arguments []string) int {
	if len(arguments) < 2 {
		printUsage()
		return exitInvalidInput
	}
	if arguments[1] == "--explain" {
		return writeExplain("Orgpull is the data-source step of a pull-based pipeline: it inventories every account in an organization hierarchy and fingerprints the result to detect change.")
	}

	switch arguments[1] {
	case "check":
		return runCheck(arguments[2:])
	case "fetch":
		return runFetch(arguments[2:])
	case "push":
		return runPush(arguments[2:])
	case "version", "--version", "-v":
		if hasExplainFlag(arguments[2:]) {
			return writeExplain("Print the CLI version.")
		}
		fmt.Println("orgpull", version)
		return exitOK
	default:
		printUsage()
		return exitInvalidInput
	}
}
