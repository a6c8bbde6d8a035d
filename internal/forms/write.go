// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package forms

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"
)

// WriteCSV writes the four tables as FORM{HEAD,TEMPLATE,LOV,MENU} CSV files
// named with the sheet prefix and a timestamp, and returns the created
// paths.
func WriteCSV(set FormSet, dir, sheetPrefix string, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	stamp := now.Format("20060102_150405")
	name := func(table string) string {
		return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.csv", table, sheetPrefix, stamp))
	}

	tables := []struct {
		path    string
		records [][]string
	}{
		{name("FORMHEAD"), headRecords(set.Head)},
		{name("FORMTEMPLATE"), templateRecords(set.Template)},
		{name("FORMLOV"), lovRecords(set.Lov)},
		{name("FORMMENU"), menuRecords(set.Menu)},
	}

	var created []string
	for _, t := range tables {
		if err := writeRecords(t.path, t.records); err != nil {
			return created, err
		}
		created = append(created, t.path)
	}
	return created, nil
}

// WriteYAML writes the whole form set as one document, the machine-readable
// companion to the CSV tables.
func WriteYAML(set FormSet, path string) error {
	data, err := yaml.Marshal(&set)
	if err != nil {
		return fmt.Errorf("encoding form set: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing form set: %w", err)
	}
	return nil
}

func writeRecords(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func headRecords(h HeadRow) [][]string {
	return [][]string{
		{"FORMNAME", "TITLE", "DESCRIPTION", "CREATED_BY", "CREATED_DATE",
			"SOURCE_FILE", "SOURCE_SHEET", "PROCEDURES_COUNT", "FILE_PREFIX", "SHEET_PREFIX"},
		{h.FormName, h.Title, h.Description, h.CreatedBy, h.CreatedDate,
			h.SourceFile, h.SourceSheet, strconv.Itoa(h.ProcedureCount), h.FilePrefix, h.SheetPrefix},
	}
}

func templateRecords(rows []TemplateRow) [][]string {
	records := [][]string{{"TEMPLATEID", "TYPE", "DESCRIPTION", "LOVCODE"}}
	for _, r := range rows {
		records = append(records, []string{r.TemplateID, r.Type, r.Description, r.LovCode})
	}
	return records
}

func lovRecords(rows []LovRow) [][]string {
	records := [][]string{{"LOVCODE", "VALUE", "DESCRIPTION", "TYPE"}}
	for _, r := range rows {
		records = append(records, []string{r.LovCode, r.Value, r.Description, r.Type})
	}
	return records
}

func menuRecords(rows []MenuRow) [][]string {
	records := [][]string{{"MENUID", "MENUTEXT", "PARENT", "ORDER", "TYPE", "FORM_NAME"}}
	for _, r := range rows {
		records = append(records, []string{r.MenuID, r.MenuText, r.Parent, strconv.Itoa(r.Order), r.Type, r.FormName})
	}
	return records
}
