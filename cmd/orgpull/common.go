package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/orgpull/orgpull/core/awsorg"
	"github.com/orgpull/orgpull/core/config"
	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/inventory"
	"github.com/orgpull/orgpull/core/orgdir"
)

// newDirectoryClient builds the authenticated directory session for a run.
// A package variable so command tests can substitute a fake directory.
var newDirectoryClient = func(source config.Source) (orgdir.Client, error) {
	return awsorg.New(source.OrganizationAccount, source.AssumeRole)
}

// loadSource reads the configuration envelope from stdin, or from the
// -input file when given.
func loadSource(inputPath string) (config.Source, error) {
	if strings.TrimSpace(inputPath) == "" {
		return config.Load(os.Stdin)
	}
	// #nosec G304 -- input path is explicit local user input.
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return config.Source{}, coreerrors.Wrap(
			fmt.Errorf("read configuration file: %w", err),
			coreerrors.CategoryInvalidInput,
			"invalid_configuration",
			"pass -input a readable configuration envelope file",
			false,
		)
	}
	return config.Parse(content)
}

func scopeRequest(source config.Source) inventory.ScopeRequest {
	return inventory.ScopeRequest{
		Roots:      source.Scope,
		ActiveOnly: source.Active.Bool(),
		RoleName:   source.RoleName,
	}
}

func hasExplainFlag(arguments []string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == "--explain" {
			return true
		}
	}
	return false
}

func writeExplain(text string) int {
	fmt.Println(text)
	return exitOK
}
