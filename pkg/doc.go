// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
spellscan.

The codebase is organized into well-defined layers. Packages depend on each
other only to the degree required, and each one has a concise, complete
responsibility.

# Entry Point

spellscan is built into a single command-line tool:

	./cmd/spellscan

# Commands

The command surface is small. Scanning is the root command; "version" is the
only subcommand.

	pkg/cmd
	pkg/cmd/scan
	pkg/cmd/ui

# The Scanning Pipeline

A scan is a sequence of steps executed over a collection of input files:
dictionary loading, tokenization, rule evaluation, suppression, and reporting.

	pkg/dictionary   // misspelling -> corrections stores, builtin and custom
	pkg/tokenize     // line scanning, word carving, identifier splitting
	pkg/rules        // candidate evaluation, casing, context exceptions
	pkg/suppress     // ignore words, skip globs, inline markers
	pkg/scan         // the orchestrator tying the above together
	pkg/fix          // in-place rewriting of auto-fixable findings

# Utilities

The remainder are domain-agnostic supporting packages.

	pkg/files     // file enumeration, text decoding, sources
	pkg/filepos   // positions within files
	pkg/config    // .spellscan.toml loading
	pkg/version   // build version
*/
package pkg
