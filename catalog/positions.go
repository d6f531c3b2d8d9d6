package catalog

import "github.com/lvgroup1/eksperti-sub000/catalog/algorithms"

// finishEntry is one cell of a position matrix: either a flat ordered step
// list or, for finishes with sub-variants, a branch keyed by variant.
type finishEntry struct {
	steps    []string
	variants map[string][]string
}

// ResolveWorkPackage returns the ordered work steps constituting the
// standard package for an insurer, surface category and finish choice.
// Swedbank matrices carry catalog id codes; the others carry narrative
// work-step names that resolve against catalog item names.
//
// A combination absent from the matrix yields an empty package, not an
// error: it signals that no standard package is defined and the expert
// enters actions manually. For dual-variant finishes an unknown variant
// behaves the same way.
func ResolveWorkPackage(insurer, category, finish, variant string) []string {
	matrix, ok := positionMatrices[algorithms.FoldKey(insurer)]
	if !ok {
		return nil
	}
	finishes, ok := matrix[algorithms.FoldKey(category)]
	if !ok {
		return nil
	}
	entry, ok := finishes[algorithms.FoldKey(finish)]
	if !ok {
		return nil
	}

	if entry.variants != nil {
		return cloneSteps(entry.variants[algorithms.FoldKey(variant)])
	}
	return cloneSteps(entry.steps)
}

// SurfaceCategories lists the categories for which standard work packages
// exist for an insurer, in stable order.
func SurfaceCategories(insurer string) []string {
	matrix, ok := positionMatrices[algorithms.FoldKey(insurer)]
	if !ok {
		return nil
	}
	var categories []string
	for _, c := range surfaceCategoryOrder {
		if _, ok := matrix[c]; ok {
			categories = append(categories, c)
		}
	}
	return categories
}

// StepItem resolves one work-package step against a catalog index, by item
// id first (coded matrices) and by name second (narrative matrices).
// Returns nil for steps the catalog does not carry.
func StepItem(idx *ItemIndex, step string) *CatalogItem {
	if item := idx.ByID(step); item != nil {
		return item
	}
	return idx.ByName(step)
}

func cloneSteps(steps []string) []string {
	if steps == nil {
		return nil
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}
