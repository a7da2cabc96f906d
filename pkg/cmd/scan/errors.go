// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"errors"
	"fmt"
)

// Process exit codes, following the sysexits convention: a usable scan
// that found misspellings is distinct from a run that could not be set up.
const (
	ExitOK       = 0
	ExitErr      = 1
	ExitUsage    = 64
	ExitFindings = 65
)

// UsageError marks configuration and setup failures that abort before any
// finding is produced.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

// FindingsError is returned by a successful scan that found misspellings;
// findings were already printed, only the exit status differs.
type FindingsError struct {
	Count int
}

func (e FindingsError) Error() string {
	return fmt.Sprintf("Found %d misspellings", e.Count)
}

// ExitCode maps an error returned from command execution to the process
// exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var findings FindingsError
	if errors.As(err, &findings) {
		return ExitFindings
	}

	var usage UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}

	return ExitErr
}

// Silent reports whether the error's message should not be printed (its
// substance was already reported).
func Silent(err error) bool {
	var findings FindingsError
	return errors.As(err, &findings)
}
