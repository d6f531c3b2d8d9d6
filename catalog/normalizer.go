package catalog

import (
	"fmt"
	"strings"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// runContext carries the per-run id bookkeeping of one normalization pass.
// It is created inside Normalize and discarded with it, so two runs over
// the same raw catalog can never leak state into each other.
type runContext struct {
	seen     map[string]bool
	counters map[string]int
}

func newRunContext() *runContext {
	return &runContext{
		seen:     make(map[string]bool),
		counters: make(map[string]int),
	}
}

// nextID synthesizes the next free <CODE>:<NNN> id for a category code.
// Counters are monotonic per code and start at 1, so a rerun over the same
// input yields identical ids in identical order.
func (rc *runContext) nextID(code string) string {
	for {
		rc.counters[code]++
		id := fmt.Sprintf("%s:%03d", code, rc.counters[code])
		if !rc.seen[id] {
			rc.seen[id] = true
			return id
		}
	}
}

// claim records an existing id; reports false if it was already taken in
// this run (a duplicate that must be re-synthesized).
func (rc *runContext) claim(id string) bool {
	if id == "" || rc.seen[id] {
		return false
	}
	rc.seen[id] = true
	return true
}

// Candidate key sets for the descriptive row fields. Like the cost synonym
// lists these are curated per observed catalogs.
var (
	categoryKeys = []string{"category", "kategorija", "grupa", "sadaļa"}
	nameKeys     = []string{"name", "nosaukums", "pozīcija", "apraksts"}
	unitKeys     = []string{"unit", "mērvienība", "mervieniba", "vienība", "mērv"}
	idKeys       = []string{"id", "kods", "code"}
)

// Normalize converts a raw, schema-inconsistent price list into a canonical
// Catalog. Pure with respect to package state: all bookkeeping lives in a
// run context local to this call.
func Normalize(raw RawCatalog) Catalog {
	rc := newRunContext()

	items := make([]CatalogItem, 0, len(raw.Items))
	for _, row := range raw.Items {
		if row == nil {
			continue
		}
		items = append(items, normalizeRow(row, rc))
	}

	items = applySyntheticMaterials(items, rc)

	currency := strings.TrimSpace(raw.Currency)
	if currency == "" {
		currency = "EUR"
	}

	return Catalog{
		Insurer:  strings.TrimSpace(raw.Insurer),
		Version:  versionWithSuffix(raw.Version),
		Currency: currency,
		Items:    items,
	}
}

// normalizeRow maps one raw row onto the canonical item shape.
//
// Cost policy: rows carrying any of the three cost components are read
// per-field; rows carrying only a price are attributed wholly to labor.
// Undifferentiated legacy prices are never split.
func normalizeRow(row map[string]any, rc *runContext) CatalogItem {
	item := CatalogItem{
		Category: getString(row, categoryKeys),
		Name:     getString(row, nameKeys),
		Unit:     NormalizeUnit(getString(row, unitKeys)),
	}

	hasSplitCosts := HasNumericField(row, FieldLabor) ||
		HasNumericField(row, FieldMaterials) ||
		HasNumericField(row, FieldMechanisms)

	if hasSplitCosts {
		item.Labor = nonNegative(PickNumeric(row, FieldLabor, nil))
		item.Materials = nonNegative(PickNumeric(row, FieldMaterials, nil))
		item.Mechanisms = nonNegative(PickNumeric(row, FieldMechanisms, nil))
	} else {
		item.Labor = nonNegative(PickNumeric(row, FieldUnitPrice, nil))
	}

	if id := getString(row, idKeys); rc.claim(id) {
		item.ID = id
	} else {
		item.ID = rc.nextID(CategoryCode(item.Category))
	}

	item.Components = parseComponents(row["components"])
	item.RecomputeUnitPrice()

	return item
}

func versionWithSuffix(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return "v2"
	}
	if strings.HasSuffix(version, "+v2") {
		return version
	}
	return version + "+v2"
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// getString resolves a descriptive field by folded key comparison, first
// candidate with a non-empty value wins. Numeric ids are formatted back to
// their shortest form.
func getString(row map[string]any, candidates []string) string {
	keys := sortedKeys(row)
	for _, cand := range candidates {
		candFold := algorithms.FoldKey(cand)
		for _, k := range keys {
			if algorithms.FoldKey(k) != candFold {
				continue
			}
			switch v := row[k].(type) {
			case string:
				if trimmed := strings.TrimSpace(v); trimmed != "" {
					return trimmed
				}
			case float64:
				if v == float64(int64(v)) {
					return fmt.Sprintf("%d", int64(v))
				}
				return fmt.Sprintf("%g", v)
			}
		}
	}
	return ""
}

// parseComponents reads a pre-existing v2 components array. Entries without
// a ref id are dropped; a missing or non-numeric multiplier defaults to 1.
func parseComponents(v any) []Component {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}

	components := make([]Component, 0, len(arr))
	for _, entry := range arr {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		refID := getString(m, []string{"ref_id", "ref", "id"})
		if refID == "" {
			continue
		}
		multiplier := 1.0
		if f, ok := toFloat(m["multiplier"]); ok && f > 0 {
			multiplier = f
		}
		components = append(components, Component{RefID: refID, Multiplier: multiplier})
	}

	if len(components) == 0 {
		return nil
	}
	return components
}
