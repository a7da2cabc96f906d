// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// binarySniffLen bounds how much of a file is inspected for NUL bytes
// when deciding whether it is text.
const binarySniffLen = 1024

type File struct {
	src     Source
	relPath string
}

// NewFiles enumerates files to scan from the given paths. Directories are
// walked recursively with entries sorted for deterministic ordering.
// Hidden files and directories (dot-prefixed) are left out unless
// checkHidden is set; "-" reads stdin.
func NewFiles(paths []string, checkHidden bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewHTTPSource(path))

		default:
			if IsHiddenPath(path) && !checkHidden {
				continue
			}

			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s'", path)
			}

			if fileInfo.IsDir() {
				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if IsHiddenPath(fi.Name()) && !checkHidden && walkedPath != path {
						if fi.IsDir() {
							return filepath.SkipDir
						}
						return nil
					}
					if fi.IsDir() || !fi.Mode().IsRegular() {
						return nil
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s'", path)
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for %s: %s", fileSrc.Description(), err)
	}

	// a file's bytes are consulted more than once per scan (text sniff,
	// line split, write-back), so fetch them a single time
	return &File{src: NewCachedSource(fileSrc), relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// Lines returns the file's decoded text one line at a time. Content that
// is valid UTF-8 is passed through; anything else is decoded as
// ISO-8859-1 so that no byte sequence fails the scan.
func (r *File) Lines() ([]string, error) {
	data, err := r.src.Bytes()
	if err != nil {
		return nil, err
	}
	return SplitLines(DecodeText(data)), nil
}

// IsText reports whether the file looks like text, i.e. carries no NUL
// byte within its leading bytes.
func (r *File) IsText() (bool, error) {
	data, err := r.src.Bytes()
	if err != nil {
		return false, err
	}
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return !bytes.ContainsRune(sniff, 0), nil
}

// DecodeText decodes raw bytes as UTF-8, or as ISO-8859-1 when the bytes
// are not valid UTF-8.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// SplitLines splits text on newlines, dropping the trailing empty element
// produced by a final newline. Carriage returns are preserved so that
// written-back files keep their line endings.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsHiddenPath reports whether the path's base name is dot-prefixed.
func IsHiddenPath(path string) bool {
	base := filepath.Base(path)
	switch base {
	case "", ".", "..":
		return false
	}
	return base[0] == '.'
}
