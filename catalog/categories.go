package catalog

import "github.com/lvgroup1/eksperti-sub000/catalog/algorithms"

// DefaultCategoryCode is used for categories missing from the lookup table.
const DefaultCategoryCode = "GEN"

// categoryCodes maps folded insurer category names to the short codes used
// for synthesized item ids. Curated from observed catalogs; extend here,
// not in the normalizer.
var categoryCodes = map[string]string{
	"griesti":           "GRI",
	"sienas":            "SIE",
	"grida":             "GRD",
	"gridas":            "GRD",
	"fasade":            "FAS",
	"logi":              "LOG",
	"durvis":            "DUR",
	"elektroinstalacija": "ELE",
	"santehnika":        "SAN",
	"jumts":             "JUM",
	"demontaza":         "DEM",
	"materiali":         "MAT",
}

// CategoryCode returns the short code for an insurer category name,
// falling back to DefaultCategoryCode for unrecognized categories.
func CategoryCode(category string) string {
	if code, ok := categoryCodes[algorithms.FoldKey(category)]; ok {
		return code
	}
	return DefaultCategoryCode
}
