// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

type UI interface {
	Printf(string, ...interface{})
	Warnf(str string, args ...interface{})
	Debugf(string, ...interface{})
}
