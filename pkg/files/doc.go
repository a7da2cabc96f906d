// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from
various file or file-like Source's.

This allows the rest of spellscan code to process logically chunked
streams of decoded text without becoming entangled in the details of how
to read data or which encoding it arrived in.
*/
package files
