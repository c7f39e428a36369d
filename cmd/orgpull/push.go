package main

import (
	"flag"
	"fmt"
	"io"
)

type pushOutput struct {
	OK   bool `json:"ok"`
	Noop bool `json:"noop"`
}

// runPush exists so the surrounding pipeline can wire all three resource
// steps symmetrically. The write direction is intentionally disabled: the
// organization is never mutated from here.
func runPush(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Validate the configuration and do nothing: the push direction of this resource is a no-op.")
	}
	flagSet := flag.NewFlagSet("push", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var jsonOutput bool
	var helpFlag bool
	flagSet.StringVar(&inputPath, "input", "", "read the configuration envelope from a file instead of stdin")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit a JSON result envelope")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return failCommand(jsonOutput, err, exitInvalidInput)
	}
	if helpFlag {
		printPushUsage()
		return exitOK
	}

	if _, err := loadSource(inputPath); err != nil {
		return failCommand(jsonOutput, err, exitInvalidInput)
	}

	if jsonOutput {
		return writeJSONOutput(pushOutput{OK: true, Noop: true}, exitOK)
	}
	fmt.Println("orgpull: push is a no-op")
	return exitOK
}
