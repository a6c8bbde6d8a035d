// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// trackerDoc is the JSON document layout of the file store, one array per
// identifier kind. The field names are load-bearing: they are shared with
// earlier generations of the tool.
type trackerDoc struct {
	Prefixes    []string `json:"prefixes"`
	LovCodes    []string `json:"lov_codes"`
	FormNames   []string `json:"form_names"`
	TemplateIDs []string `json:"template_ids"`
}

// FileBackend stores registry state as a single JSON document.
type FileBackend struct {
	// Path is the document location, e.g. "unique_identifiers.json".
	Path string
}

// Load reads the whole document. A missing file is an empty registry, not an
// error; a corrupt file is an error the caller downgrades to empty sets.
func (b FileBackend) Load() (State, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return nil, fmt.Errorf("reading registry %s: %w", b.Path, err)
	}

	var doc trackerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", b.Path, err)
	}

	return State{
		KindPrefix:     doc.Prefixes,
		KindLovCode:    doc.LovCodes,
		KindFormName:   doc.FormNames,
		KindTemplateID: doc.TemplateIDs,
	}, nil
}

// Save writes the whole document to a temp file in the same directory and
// renames it over the old one, so a crash mid-write never truncates
// previously flushed entries.
func (b FileBackend) Save(state State) error {
	doc := trackerDoc{
		Prefixes:    state[KindPrefix],
		LovCodes:    state[KindLovCode],
		FormNames:   state[KindFormName],
		TemplateIDs: state[KindTemplateID],
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating registry temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing registry temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing registry temp file: %w", err)
	}

	if err := os.Rename(tmpPath, b.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing registry %s: %w", b.Path, err)
	}
	return nil
}
