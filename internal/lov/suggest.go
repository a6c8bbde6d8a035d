// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lov

import "strings"

// suggestion maps a procedure keyword to starter condition and action value
// lists. Slice order is match precedence.
type suggestion struct {
	keyword    string
	conditions string
	actions    string
}

var suggestions = []suggestion{
	{"inspect", "Good,Dirty,Damaged,Missing", "No Action,Clean,Repair,Replace"},
	{"check", "OK,Not OK,Needs Attention", "No Action,Adjust,Repair"},
	{"clean", "Clean,Dirty,Blocked", "Cleaned,Replaced"},
	{"replace", "Good,Worn,Damaged", "Replaced,Repaired"},
	{"calibrate", "In Tolerance,Out of Tolerance", "Calibrated,Adjusted"},
	{"test", "Pass,Fail", "No Action,Repaired"},
	{"monitor", "Normal,High,Low", "No Action,Adjusted"},
}

// Default value lists for procedures with no recognized keyword.
const (
	defaultConditions = "Good,Damaged"
	defaultActions    = "No Action,Repaired"
)

// Suggest returns starter condition and action value lists for a procedure,
// based on the first recognized keyword in its text.
func Suggest(procedureText string) (conditions, actions string) {
	lower := strings.ToLower(procedureText)
	for _, s := range suggestions {
		if strings.Contains(lower, s.keyword) {
			return s.conditions, s.actions
		}
	}
	return defaultConditions, defaultActions
}
