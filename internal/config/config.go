package config

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
)

// DefaultFileName is the configuration file name expected in the working
// directory.
const DefaultFileName = "fndeploy.json"

// DefaultDeployFlags is the fixed flag set offered during bootstrap:
// region, runtime, trigger and auth for a plain HTTP cloud function.
var DefaultDeployFlags = []string{
	"--region=us-central1",
	"--runtime=nodejs20",
	"--trigger-http",
	"--allow-unauthenticated",
}

// Document is the persisted configuration: which folders to deploy, in
// order, and which flags to pass verbatim to every deploy command.
//
// The schema is open: unknown top-level keys survive a Load and are written
// back by Save, but are never interpreted.
type Document struct {
	FunctionFolders []string
	Flags           []string

	extra map[string]json.RawMessage
}

// Default returns an empty document, the seed for interactive bootstrap.
func Default() *Document {
	return &Document{
		FunctionFolders: []string{},
		Flags:           []string{},
	}
}

// Extra returns the value of an unknown key preserved from the source file,
// or nil if the key was not present.
func (d *Document) Extra(key string) json.RawMessage {
	return d.extra[key]
}

// UnmarshalJSON parses the document while retaining unknown keys.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.FunctionFolders = []string{}
	d.Flags = []string{}
	d.extra = nil

	for key, value := range raw {
		switch key {
		case "functionFolders":
			if err := json.Unmarshal(value, &d.FunctionFolders); err != nil {
				return errors.Wrap(err, "parsing functionFolders")
			}
		case "flags":
			if err := json.Unmarshal(value, &d.Flags); err != nil {
				return errors.Wrap(err, "parsing flags")
			}
		default:
			if d.extra == nil {
				d.extra = make(map[string]json.RawMessage)
			}
			d.extra[key] = value
		}
	}

	return nil
}

// MarshalJSON writes the known fields first, then any preserved unknown
// keys in sorted order for deterministic output.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	folders, err := json.Marshal(d.FunctionFolders)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"functionFolders":`)
	buf.Write(folders)

	flags, err := json.Marshal(d.Flags)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"flags":`)
	buf.Write(flags)

	keys := make([]string, 0, len(d.extra))
	for key := range d.extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(d.extra[key])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Load reads and parses the document at path. A missing, unreadable or
// malformed file is an error; callers treat every failure here as fatal.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &doc, nil
}

// Save serializes the document as indented JSON and writes it to path,
// overwriting any existing file. Before writing, Windows-style backslash
// path separators are rewritten to forward slashes and any doubled
// separators produced by the rewrite are collapsed, so persisted paths
// stay portable.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling configuration")
	}

	data = normalizeSeparators(data)
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// normalizeSeparators rewrites escaped backslashes (a literal backslash is
// encoded as `\\` in JSON text) to forward slashes, then collapses runs of
// doubled slashes. This is a textual pass over the serialized form, the
// same normalization the file receives on every write.
func normalizeSeparators(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte(`\\`), []byte(`/`))
	for bytes.Contains(data, []byte(`//`)) {
		data = bytes.ReplaceAll(data, []byte(`//`), []byte(`/`))
	}
	return data
}
