package catalog

import "strings"

// Canonical unit vocabulary. Values outside this set pass through untouched:
// the system tolerates novel units rather than rejecting catalog data.
const (
	UnitM2    = "m2"
	UnitM3    = "m3"
	UnitM     = "m"
	UnitGab   = "gab"
	UnitKpl   = "kpl"
	UnitDiena = "diena"
	UnitObj   = "obj"
	UnitCH    = "c/h"
)

// unitAliases maps cleaned unit spellings to canonical tokens.
var unitAliases = map[string]string{
	"m2":      UnitM2,
	"m3":      UnitM3,
	"m":       UnitM,
	"gab":     UnitGab,
	"gb":      UnitGab,
	"kpl":     UnitKpl,
	"d":       UnitDiena,
	"diena":   UnitDiena,
	"dienas":  UnitDiena,
	"obj":     UnitObj,
	"objekts": UnitObj,
	"c/h":     UnitCH,
	"c.h":     UnitCH,
	"cilv/h":  UnitCH,
}

var unitReplacer = strings.NewReplacer(
	"²", "2",
	"³", "3",
	"^", "",
	" ", "",
	" ", "",
)

// NormalizeUnit canonicalizes a free-text unit label: "m²", "M^2" and "m2"
// all become "m2"; "gab." and "gb." become "gab". Unknown labels are
// returned as supplied (trimmed), never rejected.
func NormalizeUnit(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	cleaned := unitReplacer.Replace(strings.ToLower(trimmed))
	cleaned = strings.TrimRight(cleaned, ".")

	if canonical, ok := unitAliases[cleaned]; ok {
		return canonical
	}
	return trimmed
}
