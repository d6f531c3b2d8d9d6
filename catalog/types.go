package catalog

import (
	"math"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// Component is a bill-of-materials edge: a reference to another catalog
// item consumed by the parent, scaled by Multiplier per one parent unit.
// Children are shared by reference; many parents may point at the same id.
type Component struct {
	RefID      string  `json:"ref_id"`
	Multiplier float64 `json:"multiplier"`
}

// CatalogItem is one priced work position in canonical form.
// UnitPrice is always the rounded sum of the three cost components and is
// recomputed whenever they change; the value coming from the source file
// is never trusted.
type CatalogItem struct {
	ID         string      `json:"id"`
	Category   string      `json:"category"`
	Name       string      `json:"name"`
	Unit       string      `json:"unit"`
	Labor      float64     `json:"labor"`
	Materials  float64     `json:"materials"`
	Mechanisms float64     `json:"mechanisms"`
	UnitPrice  float64     `json:"unit_price"`
	Components []Component `json:"components,omitempty"`
}

// Catalog is an insurer-specific list of priced work positions.
// Immutable after normalization within a session.
type Catalog struct {
	Insurer  string        `json:"insurer"`
	Version  string        `json:"version"`
	Currency string        `json:"currency"`
	Items    []CatalogItem `json:"items"`
}

// RawCatalog is the schema-inconsistent input form. Rows are kept as raw
// maps because insurers supply arbitrary JSON with no enforced field names.
type RawCatalog struct {
	Insurer  string           `json:"insurer"`
	Version  string           `json:"version"`
	Currency string           `json:"currency"`
	Items    []map[string]any `json:"items"`
}

// ResolvedChild is a BOM child with its coefficient and unit costs resolved
// against the catalog. Consumed quantity is derived at estimate-assembly
// time as coeff × parent quantity; it is never pre-multiplied here.
type ResolvedChild struct {
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Coeff      float64 `json:"coeff"`
	Labor      float64 `json:"labor"`
	Materials  float64 `json:"materials"`
	Mechanisms float64 `json:"mechanisms"`
	UnitPrice  float64 `json:"unit_price"`
}

// RecomputeUnitPrice restores the unit price invariant.
func (it *CatalogItem) RecomputeUnitPrice() {
	it.UnitPrice = Round2(it.Labor + it.Materials + it.Mechanisms)
}

// Key returns the case- and diacritic-insensitive (category, name) composite
// key used to match items across schema generations.
func (it *CatalogItem) Key() string {
	return algorithms.FoldKey(it.Category) + "|" + algorithms.FoldKey(it.Name)
}

// Round2 rounds a currency amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemIndex provides the id, (category,name) and name lookups used by BOM
// resolution and estimate assembly.
type ItemIndex struct {
	byID   map[string]*CatalogItem
	byKey  map[string]*CatalogItem
	byName map[string]*CatalogItem
}

// NewItemIndex builds an index over a normalized item list. On duplicate
// keys the first item wins, matching the order of the source catalog.
func NewItemIndex(items []CatalogItem) *ItemIndex {
	idx := &ItemIndex{
		byID:   make(map[string]*CatalogItem, len(items)),
		byKey:  make(map[string]*CatalogItem, len(items)),
		byName: make(map[string]*CatalogItem, len(items)),
	}
	for i := range items {
		it := &items[i]
		if _, ok := idx.byID[it.ID]; !ok {
			idx.byID[it.ID] = it
		}
		if key := it.Key(); key != "|" {
			if _, ok := idx.byKey[key]; !ok {
				idx.byKey[key] = it
			}
		}
		if name := algorithms.FoldKey(it.Name); name != "" {
			if _, ok := idx.byName[name]; !ok {
				idx.byName[name] = it
			}
		}
	}
	return idx
}

// ByID returns the item with the given id, or nil.
func (idx *ItemIndex) ByID(id string) *CatalogItem {
	return idx.byID[id]
}

// ByKey returns the item with the given (category, name) composite key, or nil.
func (idx *ItemIndex) ByKey(category, name string) *CatalogItem {
	return idx.byKey[algorithms.FoldKey(category)+"|"+algorithms.FoldKey(name)]
}

// ByName returns the item whose name matches case- and diacritic-insensitively, or nil.
func (idx *ItemIndex) ByName(name string) *CatalogItem {
	return idx.byName[algorithms.FoldKey(name)]
}
