package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/orgpull/orgpull/core/inventory"
)

// versionRef is the change-detection output: the fingerprint of the current
// inventory, emitted as a one-element version list.
type versionRef struct {
	ID string `json:"id"`
}

func runCheck(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Traverse the organization and print its inventory fingerprint as a one-element version list.")
	}
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var helpFlag bool
	flagSet.StringVar(&inputPath, "input", "", "read the configuration envelope from a file instead of stdin")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return failCommand(false, err, exitInvalidInput)
	}
	if helpFlag {
		printCheckUsage()
		return exitOK
	}

	source, err := loadSource(inputPath)
	if err != nil {
		return failCommand(false, err, exitInvalidInput)
	}
	client, err := newDirectoryClient(source)
	if err != nil {
		return failCommand(false, err, exitRuntimeFailure)
	}
	record, err := inventory.Build(client, scopeRequest(source))
	if err != nil {
		return failCommand(false, err, exitRuntimeFailure)
	}
	digest, err := inventory.Fingerprint(record)
	if err != nil {
		return failCommand(false, err, exitRuntimeFailure)
	}

	encoded, err := json.Marshal([]versionRef{{ID: digest}})
	if err != nil {
		return failCommand(false, err, exitRuntimeFailure)
	}
	fmt.Println(string(encoded))
	return exitOK
}
