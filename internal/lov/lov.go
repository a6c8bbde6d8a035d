// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lov derives short deterministic codes from free-text value lists
// and unique prefixes from source names, consulting the identifier registry
// so no code is ever issued twice.
// Implements: docs/ARCHITECTURE § LOV Code Generation.
package lov

import (
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/formgen/internal/registry"
)

// Generator mints LOV codes and prefixes against a registry. SheetPrefix,
// when set, namespaces every LOV code. Now is the clock for the prefix
// timestamp fallback; nil means time.Now.
type Generator struct {
	Registry    *registry.Registry
	SheetPrefix string
	Now         func() time.Time
}

// Code derives a LOV code from a comma-separated value list. Blank input
// (including lists that trim away entirely, like ",,,") returns
// "DEFAULT-<hint>" without touching the registry, so repeated calls stay
// idempotent. Otherwise the code is the first letter of each of the first
// three values, prefixed with the sheet prefix when one is set, with a bare
// counter appended until the registry accepts it.
//
// The first-letter signature is deliberately weak — "Good,Great,Gone" and
// "Green,Grey,Glue" both yield GGG — and collisions are resolved only by the
// counter loop. Downstream systems depend on the exact codes this scheme
// produces.
func (g *Generator) Code(valuesText, hint string) string {
	values := splitUpper(valuesText)
	if len(values) == 0 {
		return "DEFAULT-" + hint
	}

	var sig strings.Builder
	for i, v := range values {
		if i == 3 {
			break
		}
		sig.WriteRune([]rune(v)[0])
	}
	base := sig.String()
	if base == "" {
		base = "DEF"
	}

	candidate := base
	if g.SheetPrefix != "" {
		candidate = g.SheetPrefix + "-" + base
	}

	// Each retry carries a strictly larger suffix never tried before, so the
	// loop terminates.
	original := candidate
	for n := 1; !g.Registry.Reserve(registry.KindLovCode, candidate); n++ {
		candidate = original + strconv.Itoa(n)
	}
	return candidate
}

// SplitValues returns the raw comma split of a value list: trimmed, empties
// dropped, original case and order preserved, duplicates kept. This is what
// gets recorded against a generated code.
func SplitValues(valuesText string) []string {
	var values []string
	for _, part := range strings.Split(valuesText, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

// splitUpper is the code-derivation split: trimmed, uppercased, empties
// dropped.
func splitUpper(valuesText string) []string {
	var values []string
	for _, part := range strings.Split(valuesText, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
