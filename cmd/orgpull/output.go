package main

import (
	"encoding/json"
	"fmt"
	"os"

	coreerrors "github.com/orgpull/orgpull/core/errors"
)

type errorEnvelope struct {
	OK            bool   `json:"ok"`
	Error         string `json:"error"`
	ErrorCode     string `json:"error_code"`
	ErrorCategory string `json:"error_category"`
	Hint          string `json:"hint,omitempty"`
	Retryable     bool   `json:"retryable"`
}

func writeJSONOutput(output any, exitCode int) int {
	encoded, err := json.Marshal(output)
	if err != nil {
		fmt.Println(`{"ok":false,"error":"failed to encode output","error_code":"encode_failed","error_category":"internal_failure","retryable":false}`)
		return exitRuntimeFailure
	}
	fmt.Println(string(encoded))
	return exitCode
}

// failCommand reports a fatal error either as a JSON envelope on stdout or
// as diagnostic lines on stderr, and maps it to an exit code.
func failCommand(jsonOutput bool, err error, fallbackExit int) int {
	exitCode := exitCodeForError(err, fallbackExit)
	if jsonOutput {
		return writeJSONOutput(errorEnvelope{
			Error:         err.Error(),
			ErrorCode:     errorCode(err),
			ErrorCategory: errorCategory(err),
			Hint:          coreerrors.HintOf(err),
			Retryable:     coreerrors.RetryableOf(err),
		}, exitCode)
	}
	fmt.Fprintf(os.Stderr, "orgpull: %v\n", err)
	if hint := coreerrors.HintOf(err); hint != "" {
		fmt.Fprintf(os.Stderr, "orgpull: hint: %s\n", hint)
	}
	return exitCode
}

func exitCodeForError(err error, fallbackExit int) int {
	if err == nil {
		return exitOK
	}
	switch coreerrors.CategoryOf(err) {
	case coreerrors.CategoryInvalidInput, coreerrors.CategoryPathNotFound:
		return exitInvalidInput
	case coreerrors.CategoryDirectory, coreerrors.CategorySerialization, coreerrors.CategoryIOFailure, coreerrors.CategoryInternal:
		return exitRuntimeFailure
	}
	return fallbackExit
}

func errorCode(err error) string {
	if code := coreerrors.CodeOf(err); code != "" {
		return code
	}
	return "internal_failure"
}

func errorCategory(err error) string {
	if category := coreerrors.CategoryOf(err); category != "" {
		return string(category)
	}
	return string(coreerrors.CategoryInternal)
}
