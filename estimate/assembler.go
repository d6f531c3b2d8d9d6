package estimate

import (
	"strings"

	"github.com/lvgroup1/eksperti-sub000/catalog"
)

// ActionRow is one user-entered work position with a quantity. It maps to
// at most one catalog item by name; unmatched names still make it into the
// estimate at zero cost, because explicit expert input is never discarded.
type ActionRow struct {
	Position string  `json:"position"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// SummaryField is one key/value pair of the intake questionnaire.
type SummaryField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Intake is everything the expert entered for one estimate.
type Intake struct {
	Summary []SummaryField `json:"summary"`
	Rooms   []RoomInstance `json:"rooms"`
	Actions []ActionRow    `json:"actions"`
}

// PricedRow is one line of the Actions sheet. Derived rows are BOM children
// surfaced under their parent with quantity = coeff × parent quantity.
type PricedRow struct {
	Position   string  `json:"position"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	Labor      float64 `json:"labor"`
	Materials  float64 `json:"materials"`
	Mechanisms float64 `json:"mechanisms"`
	Total      float64 `json:"total"`
	Derived    bool    `json:"derived"`
	Parent     string  `json:"parent,omitempty"`
}

// Export is the assembled estimate: three ordered row sets, generated fresh
// on every export and never mutated afterwards.
type Export struct {
	Summary []SummaryField `json:"summary"`
	Rooms   []RoomInstance `json:"rooms"`
	Actions []PricedRow    `json:"actions"`
}

// Assemble combines intake data with a normalized catalog into the final
// priced row sets. The catalog and the intake are read-only here; all
// output rows are freshly built.
func Assemble(intake Intake, cat *catalog.Catalog) Export {
	idx := catalog.NewItemIndex(cat.Items)

	out := Export{
		Summary: append([]SummaryField{}, intake.Summary...),
		Rooms:   append([]RoomInstance{}, intake.Rooms...),
	}

	for _, action := range intake.Actions {
		name := strings.TrimSpace(action.Position)
		if name == "" || action.Quantity <= 0 {
			continue
		}

		item := idx.ByName(name)
		if item == nil {
			// User-described position unknown to the catalog: keep it
			// visible at zero cost.
			out.Actions = append(out.Actions, PricedRow{
				Position: name,
				Quantity: action.Quantity,
				Unit:     action.Unit,
			})
			continue
		}

		unit := action.Unit
		if unit == "" {
			unit = item.Unit
		}

		out.Actions = append(out.Actions, PricedRow{
			Position:   item.Name,
			Quantity:   action.Quantity,
			Unit:       unit,
			UnitPrice:  item.UnitPrice,
			Labor:      catalog.Round2(item.Labor * action.Quantity),
			Materials:  catalog.Round2(item.Materials * action.Quantity),
			Mechanisms: catalog.Round2(item.Mechanisms * action.Quantity),
			Total:      catalog.Round2(item.UnitPrice * action.Quantity),
		})

		for _, child := range catalog.ResolveChildren(item, idx) {
			qty := child.Coeff * action.Quantity
			out.Actions = append(out.Actions, PricedRow{
				Position:   child.Name,
				Quantity:   qty,
				Unit:       child.Unit,
				UnitPrice:  child.UnitPrice,
				Labor:      catalog.Round2(child.Labor * qty),
				Materials:  catalog.Round2(child.Materials * qty),
				Mechanisms: catalog.Round2(child.Mechanisms * qty),
				Total:      catalog.Round2(child.UnitPrice * qty),
				Derived:    true,
				Parent:     item.Name,
			})
		}
	}

	return out
}

// Total sums the Actions sheet.
func (e Export) Total() float64 {
	var total float64
	for _, row := range e.Actions {
		total += row.Total
	}
	return catalog.Round2(total)
}
