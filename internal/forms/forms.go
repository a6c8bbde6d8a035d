// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package forms slots extracted procedures and generated LOV codes into the
// four fixed-schema tables the downstream forms engine consumes: head,
// template, list-of-values, and menu. The schemas are an output contract
// shared with that engine; column names and the nine template entries per
// procedure are not negotiable here.
// Implements: docs/ARCHITECTURE § Form Assembly.
package forms

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/formgen/internal/lov"
	"github.com/pdiddy/formgen/internal/registry"
	"github.com/pdiddy/formgen/pkg/types"
)

// HeadRow is the single form-metadata record.
type HeadRow struct {
	FormName       string `yaml:"form_name"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	CreatedBy      string `yaml:"created_by"`
	CreatedDate    string `yaml:"created_date"`
	SourceFile     string `yaml:"source_file"`
	SourceSheet    string `yaml:"source_sheet"`
	ProcedureCount int    `yaml:"procedure_count"`
	FilePrefix     string `yaml:"file_prefix"`
	SheetPrefix    string `yaml:"sheet_prefix"`
}

// TemplateRow is one label or input-field entry of the template table.
type TemplateRow struct {
	TemplateID  string `yaml:"template_id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	LovCode     string `yaml:"lov_code,omitempty"`
}

// LovRow is one permissible value of a LOV list.
type LovRow struct {
	LovCode     string `yaml:"lov_code"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

// MenuRow is the single menu record pointing the engine at the form.
type MenuRow struct {
	MenuID   string `yaml:"menu_id"`
	MenuText string `yaml:"menu_text"`
	Parent   string `yaml:"parent"`
	Order    int    `yaml:"order"`
	Type     string `yaml:"type"`
	FormName string `yaml:"form_name"`
}

// FormSet is one assembled form: the four tables plus the code→values
// entries recorded during LOV generation.
type FormSet struct {
	Head     HeadRow          `yaml:"head"`
	Template []TemplateRow    `yaml:"template"`
	Lov      []LovRow         `yaml:"lov"`
	Menu     []MenuRow        `yaml:"menu"`
	Entries  []types.LovEntry `yaml:"entries"`
}

// Input carries everything Build needs for one sheet.
type Input struct {
	SourceFile  string
	SheetName   string
	User        string
	FilePrefix  string
	SheetPrefix string
	Procedures  []types.Procedure
	Configs     []types.LovConfig
	Now         time.Time
}

// templateFields is the fixed nine-entry layout generated per procedure.
// The LBL entry carries the procedure text; LST and ACT carry the condition
// and action LOV codes.
var templateFields = []struct {
	suffix, typ, desc string
}{
	{"LBL", "LABEL", ""},
	{"LST", "LIST", "Condition Found"},
	{"TXT", "TEXTBOX", "Remarks"},
	{"CHK", "CHECKBOX", "Completed"},
	{"ACT", "LIST", "Corrective Action"},
	{"DAT", "DATE", "Date Completed"},
	{"TIM", "TIME", "Time Spent"},
	{"USR", "USER", "Performed By"},
	{"SIG", "SIGNATURE", "Signature"},
}

// Assembler builds FormSets, reserving form names and template ids so
// regenerating a sheet can never silently reuse them.
type Assembler struct {
	Registry  *registry.Registry
	Generator *lov.Generator
}

// Build assembles the four tables for one sheet. Procedures without a
// configured value list get empty LOV codes, as the engine expects for
// free-form fields.
func (a *Assembler) Build(in Input) FormSet {
	configs := map[int]types.LovConfig{}
	for _, c := range in.Configs {
		configs[c.Ordinal] = c
	}

	formName := a.reserveFormName(in.SheetPrefix + "-FORM")

	set := FormSet{
		Head: HeadRow{
			FormName:       formName,
			Title:          "Maintenance Form - " + in.SheetName,
			Description:    "Generated from " + filepath.Base(in.SourceFile),
			CreatedBy:      in.User,
			CreatedDate:    in.Now.Format("2006-01-02 15:04:05"),
			SourceFile:     filepath.Base(in.SourceFile),
			SourceSheet:    in.SheetName,
			ProcedureCount: len(in.Procedures),
			FilePrefix:     in.FilePrefix,
			SheetPrefix:    in.SheetPrefix,
		},
		Menu: []MenuRow{{
			MenuID:   in.SheetPrefix + "-MAIN",
			MenuText: "Maintenance - " + in.SheetName,
			Parent:   "ROOT",
			Order:    1,
			Type:     "SECTION",
			FormName: formName,
		}},
	}

	for _, proc := range in.Procedures {
		cfg := configs[proc.Ordinal]

		var condCode, actCode string
		if cfg.Condition != "" {
			condCode = a.Generator.Code(cfg.Condition, fmt.Sprintf("C%02d", proc.Ordinal))
			set.Entries = append(set.Entries, types.LovEntry{
				Code: condCode, Values: lov.SplitValues(cfg.Condition), Category: types.LovCondition,
			})
			set.Lov = append(set.Lov, lovRows(condCode, cfg.Condition, types.LovCondition)...)
		}
		if cfg.Action != "" {
			actCode = a.Generator.Code(cfg.Action, fmt.Sprintf("A%02d", proc.Ordinal))
			set.Entries = append(set.Entries, types.LovEntry{
				Code: actCode, Values: lov.SplitValues(cfg.Action), Category: types.LovAction,
			})
			set.Lov = append(set.Lov, lovRows(actCode, cfg.Action, types.LovAction)...)
		}

		baseID := fmt.Sprintf("%s-P%03d", in.SheetPrefix, proc.Ordinal)
		for _, f := range templateFields {
			row := TemplateRow{
				TemplateID:  baseID + "-" + f.suffix,
				Type:        f.typ,
				Description: f.desc,
			}
			switch f.suffix {
			case "LBL":
				row.Description = proc.FullText
			case "LST":
				row.LovCode = condCode
			case "ACT":
				row.LovCode = actCode
			}
			// Sheet prefixes are registry-unique, so these cannot collide;
			// recording them keeps the ids visible to other issuers.
			a.Registry.Reserve(registry.KindTemplateID, row.TemplateID)
			set.Template = append(set.Template, row)
		}
	}

	return set
}

// reserveFormName applies the counter loop under the form_names kind.
func (a *Assembler) reserveFormName(candidate string) string {
	original := candidate
	for n := 1; !a.Registry.Reserve(registry.KindFormName, candidate); n++ {
		candidate = original + strconv.Itoa(n)
	}
	return candidate
}

// lovRows expands one value list into its table rows.
func lovRows(code, valuesText string, category types.LovCategory) []LovRow {
	label := "Condition"
	if category == types.LovAction {
		label = "Action"
	}

	var rows []LovRow
	for _, v := range lov.SplitValues(valuesText) {
		rows = append(rows, LovRow{
			LovCode:     code,
			Value:       v,
			Description: label + ": " + v,
			Type:        strings.ToUpper(string(category)),
		})
	}
	return rows
}
