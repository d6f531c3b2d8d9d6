package catalog

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// SemanticField names the cost component being resolved from a raw row.
type SemanticField string

const (
	FieldLabor      SemanticField = "labor"
	FieldMaterials  SemanticField = "materials"
	FieldMechanisms SemanticField = "mechanisms"
	FieldUnitPrice  SemanticField = "unit_price"
)

// DefaultExactKeys holds the curated per-field synonym lists tried in the
// exact pass, in priority order. Comparison is diacritic-folded and
// case-insensitive. Hand-curated from observed insurer catalogs; treat as
// configuration data to extend when a new catalog shows up.
var DefaultExactKeys = map[SemanticField][]string{
	FieldLabor: {
		"labor", "labour", "darbs", "darba alga", "darba_alga", "darba izmaksas", "alga",
	},
	FieldMaterials: {
		"materials", "materiāli", "materiali", "materiālu izmaksas", "mat",
	},
	FieldMechanisms: {
		"mechanisms", "mehānismi", "mehanismi", "mehānismu izmaksas", "meh",
	},
	FieldUnitPrice: {
		"unit_price", "vienības cena", "vienibas cena", "vien. cena", "cena", "price",
	},
}

// fieldStems are matched against the cleaned, noise-stripped form of a row
// key in the fuzzy pass. A materials key must start with a materials stem,
// not merely contain it, so that e.g. "piemaksa materiāliem" stays out.
var fieldStems = map[SemanticField][]*regexp.Regexp{
	FieldLabor: {
		regexp.MustCompile(`^darb`),
		regexp.MustCompile(`^alga`),
		regexp.MustCompile(`^labou?r`),
	},
	FieldMaterials: {
		regexp.MustCompile(`^mater`),
		regexp.MustCompile(`^izejmater`),
	},
	FieldMechanisms: {
		regexp.MustCompile(`^meh`),
		regexp.MustCompile(`^mechan`),
	},
	FieldUnitPrice: {
		regexp.MustCompile(`^vien`),
		regexp.MustCompile(`^cena`),
		regexp.MustCompile(`^price`),
	},
}

// noiseSuffixes are stripped repeatedly from the tail of a cleaned key
// before stem matching: "materialuizmaksaseur" -> "materialu". A suffix is
// only stripped while a non-empty remainder is left, so "cena" itself still
// matches the unit-price stem. Order matters: "bezpvn" before "pvn".
var noiseSuffixes = []string{
	"izmaksas", "izdevumi", "summa", "cena", "eur", "bezpvn", "pvn", "kopa",
}

// fuzzyBlacklist rejects keys whose original (folded) text denotes a total,
// subtotal, tax or markup. Applied in the fuzzy pass only, before stem
// matching, so a field named "materiālu kopsumma" is never mistaken for a
// per-unit materials cost. Exact-pass synonyms are curated and exempt.
var fuzzyBlacklist = regexp.MustCompile(
	`kop|total|sum|pvn|vat|transport|virsizdev|pelna|nodok|uzcen|piemaks`)

var keyStemmer = algorithms.NewEnglishStemmer()

// PickNumeric resolves the numeric value of a semantic field from a raw
// catalog row. Exact synonym lookup runs first; only when it finds nothing
// does the fuzzy stem pass run. Missing or unparseable data resolves to 0;
// one bad row never fails a catalog load.
func PickNumeric(row map[string]any, field SemanticField, exactKeys []string) float64 {
	v, _ := pickNumeric(row, field, exactKeys)
	return v
}

// HasNumericField reports whether the row carries a resolvable non-null
// value for the field. Used to tell split-cost rows from price-only rows.
func HasNumericField(row map[string]any, field SemanticField) bool {
	_, ok := pickNumeric(row, field, nil)
	return ok
}

func pickNumeric(row map[string]any, field SemanticField, exactKeys []string) (float64, bool) {
	if exactKeys == nil {
		exactKeys = DefaultExactKeys[field]
	}
	keys := sortedKeys(row)

	// Exact pass: first curated synonym with a numeric value wins.
	for _, cand := range exactKeys {
		candFold := algorithms.FoldKey(cand)
		for _, k := range keys {
			if algorithms.FoldKey(k) != candFold {
				continue
			}
			if v, ok := toFloat(row[k]); ok {
				return v, true
			}
		}
	}

	// Fuzzy pass: clean, strip noise, match field stems. Blacklisted keys
	// are rejected on their original text even when the cleaned form would
	// match a stem.
	stems := fieldStems[field]
	for _, k := range keys {
		if fuzzyBlacklist.MatchString(algorithms.FoldKey(k)) {
			continue
		}
		stripped := cleanAndStrip(k)
		if stripped == "" {
			continue
		}
		for _, re := range stems {
			if re.MatchString(stripped) {
				if v, ok := toFloat(row[k]); ok {
					return v, true
				}
			}
		}
	}

	return 0, false
}

// cleanAndStrip folds a key, removes non-alphanumerics and peels known
// suffix noise off the tail. Keys that were plain ASCII to begin with are
// English-looking and go through the stemmer first; folded Latvian text
// must not, or the stemmer would eat its inflection endings.
func cleanAndStrip(key string) string {
	folded := algorithms.FoldKey(key)
	if isASCII(key) {
		folded = keyStemmer.StemTokens(folded)
	}
	cleaned := algorithms.CleanKey(folded)

	for {
		stripped := false
		for _, suffix := range noiseSuffixes {
			if strings.HasSuffix(cleaned, suffix) && len(cleaned) > len(suffix) {
				cleaned = strings.TrimSuffix(cleaned, suffix)
				stripped = true
				break
			}
		}
		if !stripped {
			return cleaned
		}
	}
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// sortedKeys returns the row keys in stable order so resolution is
// deterministic across runs regardless of map iteration order.
func sortedKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toFloat coerces the JSON value shapes seen in insurer files into a
// float64: numbers, numeric strings with either decimal separator, and
// json.Number. Null and anything else report false.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", "."))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
