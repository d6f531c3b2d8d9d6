package catalog

import (
	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// legacyChildKeys are the embedded child-array key spellings seen in older
// catalog schemas, in match priority order. The first non-empty array wins;
// multiple candidate arrays on one row are never merged.
var legacyChildKeys = []string{
	"children", "komponentes", "apakšpozīcijas", "sastāvdaļas",
}

// coeffKeys resolve a legacy child's consumption coefficient.
var coeffKeys = []string{"coeff", "koef", "multiplier", "daudzums"}

// ResolveChildren resolves a parent's bill of materials into children with
// unit costs and coefficients. Nested BOMs are flattened, multiplying
// coefficients down the chain. References to unknown ids are silently
// omitted: catalog curation errors must not block estimate generation.
//
// The result carries unit costs and the multiplier only; consumed
// quantities are derived at estimate-assembly time as coeff × placed
// parent quantity.
func ResolveChildren(parent *CatalogItem, idx *ItemIndex) []ResolvedChild {
	if parent == nil || len(parent.Components) == 0 {
		return nil
	}
	visited := map[string]bool{parent.ID: true}
	return resolveComponents(parent.Components, 1, idx, visited)
}

func resolveComponents(components []Component, factor float64, idx *ItemIndex, visited map[string]bool) []ResolvedChild {
	var children []ResolvedChild

	for _, comp := range components {
		child := idx.ByID(comp.RefID)
		if child == nil || visited[child.ID] {
			continue
		}

		coeff := comp.Multiplier
		if coeff <= 0 {
			coeff = 1
		}
		coeff *= factor

		children = append(children, ResolvedChild{
			Name:       child.Name,
			Unit:       child.Unit,
			Coeff:      coeff,
			Labor:      child.Labor,
			Materials:  child.Materials,
			Mechanisms: child.Mechanisms,
			UnitPrice:  child.UnitPrice,
		})

		if len(child.Components) > 0 {
			visited[child.ID] = true
			children = append(children, resolveComponents(child.Components, coeff, idx, visited)...)
			delete(visited, child.ID)
		}
	}

	return children
}

// AttachChildrenFromLegacy walks a legacy raw catalog, locates embedded
// child arrays and wires them onto the already-normalized items as
// component edges, materializing each child as a catalog item of its own.
//
// A donor row is matched to its normalized parent by id first, falling back
// to the case-insensitive (category, name) composite key. Children lacking
// a resolvable name are dropped. Returns the extended item list and the
// number of attached children.
func AttachChildrenFromLegacy(items []CatalogItem, legacy RawCatalog) ([]CatalogItem, int) {
	idx := NewItemIndex(items)

	rc := newRunContext()
	for i := range items {
		rc.seen[items[i].ID] = true
	}

	// Children materialized in this pass, keyed like ItemIndex.ByKey, so the
	// same legacy child referenced from two parents is created only once.
	addedByKey := make(map[string]*CatalogItem)
	var added []CatalogItem
	attached := 0

	for _, row := range legacy.Items {
		if row == nil {
			continue
		}
		childRows := findChildArray(row)
		if len(childRows) == 0 {
			continue
		}

		parent := matchLegacyParent(row, idx)
		if parent == nil {
			continue
		}

		for _, childRow := range childRows {
			name := getString(childRow, nameKeys)
			if name == "" {
				continue
			}

			coeff := legacyCoeff(childRow)

			child := resolveLegacyChildItem(childRow, parent, idx, addedByKey, rc, &added)
			if hasComponentRef(parent.Components, child.ID) {
				continue
			}
			parent.Components = append(parent.Components, Component{RefID: child.ID, Multiplier: coeff})
			attached++
		}
	}

	return append(items, added...), attached
}

// legacyCoeff reads a legacy child's consumption coefficient; the first
// resolvable candidate key wins, missing or non-numeric defaults to 1.
func legacyCoeff(childRow map[string]any) float64 {
	keys := sortedKeys(childRow)
	for _, cand := range coeffKeys {
		candFold := algorithms.FoldKey(cand)
		for _, k := range keys {
			if algorithms.FoldKey(k) != candFold {
				continue
			}
			if f, ok := toFloat(childRow[k]); ok && f > 0 {
				return f
			}
		}
	}
	return 1
}

// resolveLegacyChildItem returns the catalog item backing a legacy child
// row, reusing an existing item with the same (category, name) key when one
// exists and materializing a new one otherwise.
func resolveLegacyChildItem(childRow map[string]any, parent *CatalogItem, idx *ItemIndex, addedByKey map[string]*CatalogItem, rc *runContext, added *[]CatalogItem) *CatalogItem {
	category := getString(childRow, categoryKeys)
	if category == "" {
		category = parent.Category
	}
	name := getString(childRow, nameKeys)
	key := algorithms.FoldKey(category) + "|" + algorithms.FoldKey(name)

	if existing := idx.byKey[key]; existing != nil {
		return existing
	}
	if existing := addedByKey[key]; existing != nil {
		return existing
	}

	item := CatalogItem{
		Category: category,
		Name:     name,
		Unit:     NormalizeUnit(getString(childRow, unitKeys)),
	}

	hasSplitCosts := HasNumericField(childRow, FieldLabor) ||
		HasNumericField(childRow, FieldMaterials) ||
		HasNumericField(childRow, FieldMechanisms)
	if hasSplitCosts {
		item.Labor = nonNegative(PickNumeric(childRow, FieldLabor, nil))
		item.Materials = nonNegative(PickNumeric(childRow, FieldMaterials, nil))
		item.Mechanisms = nonNegative(PickNumeric(childRow, FieldMechanisms, nil))
	} else {
		item.Labor = nonNegative(PickNumeric(childRow, FieldUnitPrice, nil))
	}

	if id := getString(childRow, idKeys); rc.claim(id) {
		item.ID = id
	} else {
		item.ID = rc.nextID(CategoryCode(item.Category))
	}
	item.RecomputeUnitPrice()

	*added = append(*added, item)
	addedByKey[key] = &(*added)[len(*added)-1]
	return addedByKey[key]
}

// matchLegacyParent resolves the donor row to a normalized item, by id
// first and by (category, name) when the id lookup fails.
func matchLegacyParent(row map[string]any, idx *ItemIndex) *CatalogItem {
	if id := getString(row, idKeys); id != "" {
		if item := idx.ByID(id); item != nil {
			return item
		}
	}
	category := getString(row, categoryKeys)
	name := getString(row, nameKeys)
	if name == "" {
		return nil
	}
	return idx.ByKey(category, name)
}

// findChildArray locates the first embedded child array on a legacy row:
// candidate keys at the current level win in priority order, and nested
// maps and arrays are searched depth-first only when the current level has
// none.
func findChildArray(row map[string]any) []map[string]any {
	keys := sortedKeys(row)

	for _, cand := range legacyChildKeys {
		candFold := algorithms.FoldKey(cand)
		for _, k := range keys {
			if algorithms.FoldKey(k) != candFold {
				continue
			}
			if rows := toRowSlice(row[k]); len(rows) > 0 {
				return rows
			}
		}
	}

	for _, k := range keys {
		switch v := row[k].(type) {
		case map[string]any:
			if rows := findChildArray(v); len(rows) > 0 {
				return rows
			}
		case []any:
			for _, entry := range v {
				if m, ok := entry.(map[string]any); ok {
					if rows := findChildArray(m); len(rows) > 0 {
						return rows
					}
				}
			}
		}
	}

	return nil
}

func toRowSlice(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(arr))
	for _, entry := range arr {
		if m, ok := entry.(map[string]any); ok {
			rows = append(rows, m)
		}
	}
	return rows
}

func hasComponentRef(components []Component, refID string) bool {
	for _, c := range components {
		if c.RefID == refID {
			return true
		}
	}
	return false
}
