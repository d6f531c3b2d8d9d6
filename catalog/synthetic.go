package catalog

import (
	"strings"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// syntheticLeaf is a materials-only BOM leaf injected during normalization
// for categories whose catalogs price assembly work without breaking out
// the consumed materials.
type syntheticLeaf struct {
	Name       string
	Unit       string
	Materials  float64
	Multiplier float64
}

// syntheticRule attaches a set of leaves to the first item whose category
// and name contain the given folded substrings. Catalog-curation data, not
// user input; runs once per normalization pass.
type syntheticRule struct {
	CategoryContains string
	NameContains     string
	Leaves           []syntheticLeaf
}

var syntheticRules = []syntheticRule{
	{
		CategoryContains: "fasad",
		NameContains:     "montaz",
		Leaves: []syntheticLeaf{
			{Name: "Apšuvuma dēļi", Unit: UnitM2, Materials: 9.20, Multiplier: 1.05},
			{Name: "Stiprinājuma elementi", Unit: UnitGab, Materials: 0.35, Multiplier: 12},
			{Name: "Skrūves un naglas", Unit: UnitKpl, Materials: 2.10, Multiplier: 0.2},
		},
	},
}

// applySyntheticMaterials injects the configured material leaves and wires
// them onto their parents as components. Parents are matched by
// case-insensitive substring on category and name; rules without a match
// are skipped silently.
func applySyntheticMaterials(items []CatalogItem, rc *runContext) []CatalogItem {
	var added []CatalogItem

	for _, rule := range syntheticRules {
		parentIdx := findSyntheticParent(items, rule)
		if parentIdx < 0 {
			continue
		}

		for _, leaf := range rule.Leaves {
			child := CatalogItem{
				ID:        rc.nextID("MAT"),
				Category:  "Materiāli",
				Name:      leaf.Name,
				Unit:      leaf.Unit,
				Materials: leaf.Materials,
			}
			child.RecomputeUnitPrice()
			added = append(added, child)

			items[parentIdx].Components = append(items[parentIdx].Components, Component{
				RefID:      child.ID,
				Multiplier: leaf.Multiplier,
			})
		}
	}

	return append(items, added...)
}

func findSyntheticParent(items []CatalogItem, rule syntheticRule) int {
	for i := range items {
		if strings.Contains(algorithms.FoldKey(items[i].Category), rule.CategoryContains) &&
			strings.Contains(algorithms.FoldKey(items[i].Name), rule.NameContains) {
			return i
		}
	}
	return -1
}
