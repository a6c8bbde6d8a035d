// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package forms

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return records
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	set := newAssembler(t).Build(sampleInput())
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

	created, err := WriteCSV(set, dir, "MAI-3C", now)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(created) != 4 {
		t.Fatalf("created %d files, want 4", len(created))
	}

	wantNames := []string{
		"FORMHEAD_MAI-3C_20260831_093000.csv",
		"FORMTEMPLATE_MAI-3C_20260831_093000.csv",
		"FORMLOV_MAI-3C_20260831_093000.csv",
		"FORMMENU_MAI-3C_20260831_093000.csv",
	}
	for i, want := range wantNames {
		if got := filepath.Base(created[i]); got != want {
			t.Errorf("created[%d] = %s, want %s", i, got, want)
		}
	}

	head := readCSV(t, created[0])
	if len(head) != 2 {
		t.Fatalf("head table has %d records, want header + 1 row", len(head))
	}
	if head[0][0] != "FORMNAME" || head[0][7] != "PROCEDURES_COUNT" {
		t.Errorf("unexpected head columns: %v", head[0])
	}
	if head[1][0] != "MAI-3C-FORM" || head[1][7] != "2" {
		t.Errorf("unexpected head row: %v", head[1])
	}

	template := readCSV(t, created[1])
	if len(template) != 1+18 {
		t.Errorf("template table has %d records, want header + 18 rows", len(template))
	}
	if strings.Join(template[0], ",") != "TEMPLATEID,TYPE,DESCRIPTION,LOVCODE" {
		t.Errorf("unexpected template columns: %v", template[0])
	}

	lovTable := readCSV(t, created[2])
	if len(lovTable) != 1+4 {
		t.Errorf("lov table has %d records, want header + 4 rows", len(lovTable))
	}

	menu := readCSV(t, created[3])
	if len(menu) != 2 {
		t.Fatalf("menu table has %d records, want header + 1 row", len(menu))
	}
	if menu[1][2] != "ROOT" || menu[1][5] != "MAI-3C-FORM" {
		t.Errorf("unexpected menu row: %v", menu[1])
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formset.yaml")
	set := newAssembler(t).Build(sampleInput())

	if err := WriteYAML(set, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got FormSet
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("parsing written form set: %v", err)
	}
	if got.Head.FormName != set.Head.FormName {
		t.Errorf("form name = %q, want %q", got.Head.FormName, set.Head.FormName)
	}
	if len(got.Template) != len(set.Template) {
		t.Errorf("template rows = %d, want %d", len(got.Template), len(set.Template))
	}
	if len(got.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(got.Entries))
	}
}
