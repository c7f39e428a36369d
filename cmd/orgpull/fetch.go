package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/fsx"
	"github.com/orgpull/orgpull/core/inventory"
)

// inventoryFileName is the sink file written under the destination directory.
const inventoryFileName = "accounts.yaml"

type fetchOutput struct {
	OK          bool   `json:"ok"`
	Path        string `json:"path"`
	Accounts    int    `json:"accounts"`
	Fingerprint string `json:"fingerprint"`
}

func runFetch(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Traverse the organization and write the full account inventory to <dest>/accounts.yaml.")
	}
	flagSet := flag.NewFlagSet("fetch", flag.ContinueOnError)
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
		printFetchUsage()
		return exitOK
	}
	if flagSet.NArg() != 1 {
		return failCommand(jsonOutput, fmt.Errorf("fetch requires exactly one destination directory argument"), exitInvalidInput)
	}
	destination := flagSet.Arg(0)

	source, err := loadSource(inputPath)
	if err != nil {
		return failCommand(jsonOutput, err, exitInvalidInput)
	}
	client, err := newDirectoryClient(source)
	if err != nil {
		return failCommand(jsonOutput, err, exitRuntimeFailure)
	}
	record, err := inventory.Build(client, scopeRequest(source))
	if err != nil {
		return failCommand(jsonOutput, err, exitRuntimeFailure)
	}
	encoded, err := inventory.EncodeYAML(record)
	if err != nil {
		return failCommand(jsonOutput, err, exitRuntimeFailure)
	}
	digest, err := inventory.Fingerprint(record)
	if err != nil {
		return failCommand(jsonOutput, err, exitRuntimeFailure)
	}

	sinkPath := filepath.Join(destination, inventoryFileName)
	if err := fsx.WriteFileAtomic(sinkPath, encoded, 0o644); err != nil {
		return failCommand(jsonOutput, coreerrors.Wrap(
			err,
			coreerrors.CategoryIOFailure,
			"sink_write_failed",
			"check the destination directory is writable",
			false,
		), exitRuntimeFailure)
	}

	if jsonOutput {
		return writeJSONOutput(fetchOutput{
			OK:          true,
			Path:        sinkPath,
			Accounts:    len(record.Accounts),
			Fingerprint: digest,
		}, exitOK)
	}
	fmt.Printf("orgpull: wrote %d accounts to %s\n", len(record.Accounts), sinkPath)
	return exitOK
}
