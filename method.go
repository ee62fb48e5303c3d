package main

import (
	"log"
	"strings"
)

// Canonical body-fat method identifiers. Everything else in the system —
// result tagging, metadata lookup, telemetry labels — uses these two values.
const (
	methodNavy       = "navy"
	methodDeurenberg = "deurenberg"
)

// methodAliases maps normalized free-form labels to canonical identifiers.
// Keys must already be lower-cased and trimmed.
var methodAliases = map[string]string{
	"navy":      methodNavy,
	"us_navy":   methodNavy,
	"us-navy":   methodNavy,
	"u.s. navy": methodNavy,
	"usnavy":    methodNavy,

	"deurenberg":     methodDeurenberg,
	"deurenberg1991": methodDeurenberg,
	"d1991":          methodDeurenberg,
}

// methodCatalog holds the display metadata the presentation layer renders
// next to whichever method the calculator chose.
var methodCatalog = map[string]methodMetadata{
	methodNavy: {
		Key:         methodNavy,
		DisplayName: "U.S. Navy",
		Description: "Circumference-based estimate from neck, waist and (for women) hip measurements.",
		Requires:    []string{"neck_cm", "waist_cm", "hip_cm (female)"},
	},
	methodDeurenberg: {
		Key:         methodDeurenberg,
		DisplayName: "Deurenberg (1991)",
		Description: "Population estimate from BMI, age and sex. Used when circumference measurements are missing or inconsistent.",
		Requires:    []string{},
	},
}

// normalizeMethodKey maps a free-form method label to "navy" or "deurenberg".
// Total over all strings: unrecognized or empty input logs a warning and
// falls back to deurenberg, which needs no measurements. Idempotent — the
// canonical identifiers are themselves aliases.
func normalizeMethodKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := methodAliases[key]; ok {
		return canonical
	}
	log.Printf("[method] unrecognized body-fat method %q, defaulting to %s", label, methodDeurenberg)
	observeMethodFallback()
	return methodDeurenberg
}

// methodInfo returns the display metadata for a (possibly free-form) method
// label, resolving it through normalizeMethodKey first.
func methodInfo(label string) methodMetadata {
	return methodCatalog[normalizeMethodKey(label)]
}
