// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotio reads and writes multigraph documents in TOML, YAML
// or JSON format. The format of a file is given by its extension.
// Reading is strict: unknown fields are an error.
package plotio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for files of an unknown format.
var ErrFormat = errors.New("plotio: unknown document format")

// Format is a document format.
type Format int32

const (
	TOML Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	}
	return "TOML"
}

// FormatFor returns the format of the given file name from its extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("%w: %q", ErrFormat, filename)
}

// Open reads the document in the given file.
func Open(filename string) (*Document, error) {
	f, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	doc, err := Read(fp, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// Read reads a document in format f from r.
func Read(r io.Reader, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(doc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	default:
		return nil, ErrFormat
	}
	if err != nil {
		return nil, fmt.Errorf("plotio: reading %v document: %w", f, err)
	}
	return doc, nil
}

// ReadBytes reads a document in format f from b.
func ReadBytes(b []byte, f Format) (*Document, error) {
	return Read(bytes.NewReader(b), f)
}

// Write writes the document to w in format f.
func Write(doc *Document, w io.Writer, f Format) error {
	switch f {
	case TOML:
		return tomlx.Write(doc, w)
	case YAML:
		return yamlx.Write(doc, w)
	case JSON:
		return jsonx.WriteIndent(doc, w)
	}
	return ErrFormat
}

// Save writes the document to the given file,
// in the format given by its extension.
func Save(doc *Document, filename string) error {
	f, err := FormatFor(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = Write(doc, fp, f)
	return errors.Join(err, fp.Close())
}
