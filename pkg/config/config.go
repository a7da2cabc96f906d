// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	goversion "github.com/hashicorp/go-version"

	"spellscan.dev/spellscan/pkg/rules"
)

// DefaultPath is looked up in the working directory when no --config flag
// is given.
const DefaultPath = ".spellscan.toml"

// Config mirrors the scan command's flag surface so projects can check in
// their scanning policy.
type Config struct {
	MinVersion string     `toml:"min-version"`
	Scan       ScanConfig `toml:"scan"`
	Rules      []Rule     `toml:"rule"`
}

type ScanConfig struct {
	Builtin          string   `toml:"builtin"`
	Dictionaries     []string `toml:"dictionary"`
	IgnoreWords      []string `toml:"ignore-words"`
	Skip             []string `toml:"skip"`
	InlineMarker     string   `toml:"inline-marker"`
	IgnoreRegex      string   `toml:"ignore-regex"`
	ExcludeFile      string   `toml:"exclude-file"`
	SplitIdentifiers bool     `toml:"split-identifiers"`
	CheckHidden      bool     `toml:"check-hidden"`
	CheckFilenames   bool     `toml:"check-filenames"`
}

// Rule is a context exception in config form; direction is one of
// "before", "after" or "any" (default).
type Rule struct {
	Word      string `toml:"word"`
	Adjacent  string `toml:"adjacent"`
	Direction string `toml:"direction"`
}

// Load reads a config file. A missing file at the default path is not an
// error; an explicitly requested file must exist.
func Load(path string, explicit bool) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Checking config file '%s': %s", path, err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("Parsing config file '%s': %s", path, err)
	}

	return cfg, nil
}

// CheckVersion enforces the config's min-version constraint against the
// running binary's version.
func (c Config) CheckVersion(current string) error {
	if c.MinVersion == "" {
		return nil
	}

	constraint, err := goversion.NewConstraint(">= " + c.MinVersion)
	if err != nil {
		return fmt.Errorf("Parsing min-version '%s': %s", c.MinVersion, err)
	}

	ver, err := goversion.NewVersion(current)
	if err != nil {
		return fmt.Errorf("Parsing version '%s': %s", current, err)
	}

	if !constraint.Check(ver) {
		return fmt.Errorf("spellscan version %s does not meet the minimum required version %s", current, c.MinVersion)
	}
	return nil
}

// ContextRules converts config rules into evaluator rules. Rules with an
// unknown direction are dropped; the aggregated error reports all of them
// for warning, never failing the run.
func (c Config) ContextRules() ([]rules.ContextRule, error) {
	var converted []rules.ContextRule
	var errs *multierror.Error

	for _, r := range c.Rules {
		direction, err := parseDirection(r.Direction)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("Rule for word '%s': %s", r.Word, err))
			continue
		}
		if r.Word == "" || r.Adjacent == "" {
			errs = multierror.Append(errs, fmt.Errorf("Rule for word '%s': word and adjacent are both required", r.Word))
			continue
		}
		converted = append(converted, rules.ContextRule{
			Word:      r.Word,
			Adjacent:  r.Adjacent,
			Direction: direction,
		})
	}

	return converted, errs.ErrorOrNil()
}

func parseDirection(s string) (rules.Direction, error) {
	switch s {
	case "", "any":
		return rules.Any, nil
	case "before":
		return rules.Before, nil
	case "after":
		return rules.After, nil
	default:
		return rules.Any, fmt.Errorf("unknown direction '%s' (want before, after or any)", s)
	}
}
