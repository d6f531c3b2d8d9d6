package catalog

import (
	"reflect"
	"testing"
)

func TestNormalizeSplitCosts(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Version: "2024.1",
		Items: []map[string]any{
			{
				"kategorija": "Griesti",
				"nosaukums":  "Krāsošana divās kārtās",
				"mērvienība": "m²",
				"darbs":      3.5,
				"materiāli":  1.25,
				"mehānismi":  0.2,
			},
		},
	}

	c := Normalize(raw)
	if len(c.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(c.Items))
	}

	it := c.Items[0]
	if it.Labor != 3.5 || it.Materials != 1.25 || it.Mechanisms != 0.2 {
		t.Errorf("cost triple = %v/%v/%v", it.Labor, it.Materials, it.Mechanisms)
	}
	if it.UnitPrice != 4.95 {
		t.Errorf("unit price = %v, want 4.95", it.UnitPrice)
	}
	if it.Unit != UnitM2 {
		t.Errorf("unit = %q, want m2", it.Unit)
	}
	if it.ID != "GRI:001" {
		t.Errorf("synthesized id = %q, want GRI:001", it.ID)
	}
	if c.Version != "2024.1+v2" {
		t.Errorf("version = %q, want 2024.1+v2", c.Version)
	}
	if c.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", c.Currency)
	}
}

func TestNormalizePriceOnlyGoesToLabor(t *testing.T) {
	raw := RawCatalog{
		Insurer: "balta",
		Items: []map[string]any{
			{"kategorija": "Sienas", "nosaukums": "Gruntēšana", "cena": 12.5},
		},
	}

	it := Normalize(raw).Items[0]
	if it.Labor != 12.5 {
		t.Errorf("labor = %v, want the full unit price 12.5", it.Labor)
	}
	if it.Materials != 0 || it.Mechanisms != 0 {
		t.Errorf("materials/mechanisms = %v/%v, want 0/0", it.Materials, it.Mechanisms)
	}
	if it.UnitPrice != 12.5 {
		t.Errorf("unit price = %v, want 12.5", it.UnitPrice)
	}
}

func TestNormalizeUnitPriceInvariant(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Items: []map[string]any{
			// unit_price in the source is stale on purpose; it must be
			// recomputed, never trusted.
			{"nosaukums": "A", "darbs": 1.111, "materiāli": 2.222, "unit_price": 99.0},
			{"nosaukums": "B", "cena": 5.0},
		},
	}

	for _, it := range Normalize(raw).Items {
		if it.UnitPrice != Round2(it.Labor+it.Materials+it.Mechanisms) {
			t.Errorf("item %s violates unit price invariant: %v", it.Name, it.UnitPrice)
		}
	}
}

func TestNormalizeIDHandling(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Items: []map[string]any{
			{"id": "A1", "kategorija": "Griesti", "nosaukums": "Pirmais"},
			{"id": "A1", "kategorija": "Griesti", "nosaukums": "Dublikāts"},
			{"kategorija": "Nezināma grupa", "nosaukums": "Bez id"},
		},
	}

	items := Normalize(raw).Items
	if items[0].ID != "A1" {
		t.Errorf("existing unique id should be kept, got %q", items[0].ID)
	}
	if items[1].ID != "GRI:001" {
		t.Errorf("duplicate id should be re-synthesized, got %q", items[1].ID)
	}
	if items[2].ID != "GEN:001" {
		t.Errorf("unknown category should use the GEN code, got %q", items[2].ID)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Items: []map[string]any{
			{"kategorija": "Griesti", "nosaukums": "A", "darbs": 1.0},
			{"kategorija": "Griesti", "nosaukums": "B", "darbs": 2.0},
			{"kategorija": "Sienas", "nosaukums": "C", "cena": 3.0},
		},
	}

	first := Normalize(raw)
	second := Normalize(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("normalization must be a pure function of its input")
	}
	if first.Items[0].ID != "GRI:001" || first.Items[1].ID != "GRI:002" || first.Items[2].ID != "SIE:001" {
		t.Errorf("ids not sequential per category: %s %s %s",
			first.Items[0].ID, first.Items[1].ID, first.Items[2].ID)
	}
}

func TestNormalizeFasadeScenario(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Items: []map[string]any{
			{
				"category":  "Fasāde",
				"name":      "X montāža",
				"unit":      "m2",
				"labor":     5.0,
				"materiāli": 2.0,
			},
		},
	}

	c := Normalize(raw)
	parent := c.Items[0]
	if parent.Materials != 2.0 {
		t.Errorf("materials = %v, want 2.0 via the materiāli key", parent.Materials)
	}
	if parent.UnitPrice != 7.0 {
		t.Errorf("unit price = %v, want 7.0", parent.UnitPrice)
	}

	// The facade assembly rule injects its material leaves and wires them
	// as components on the parent.
	if len(parent.Components) != 3 {
		t.Fatalf("expected 3 synthetic components, got %d", len(parent.Components))
	}
	if len(c.Items) != 4 {
		t.Fatalf("expected parent + 3 synthetic leaves, got %d items", len(c.Items))
	}

	idx := NewItemIndex(c.Items)
	for _, comp := range parent.Components {
		leaf := idx.ByID(comp.RefID)
		if leaf == nil {
			t.Fatalf("synthetic component %s not found in catalog", comp.RefID)
		}
		if leaf.Labor != 0 || leaf.Mechanisms != 0 {
			t.Errorf("synthetic leaf %s should be materials-only", leaf.Name)
		}
		if leaf.UnitPrice != leaf.Materials {
			t.Errorf("leaf %s unit price %v != materials %v", leaf.Name, leaf.UnitPrice, leaf.Materials)
		}
	}
}

func TestNormalizeEmptyAndNilRows(t *testing.T) {
	raw := RawCatalog{
		Insurer: "bta",
		Items:   []map[string]any{nil, {}},
	}

	c := Normalize(raw)
	if len(c.Items) != 1 {
		t.Fatalf("nil rows skipped, empty rows kept: got %d items", len(c.Items))
	}
	if c.Items[0].ID != "GEN:001" || c.Items[0].UnitPrice != 0 {
		t.Errorf("empty row should normalize to a zero-cost GEN item, got %+v", c.Items[0])
	}
}

func TestVersionSuffix(t *testing.T) {
	if got := versionWithSuffix(""); got != "v2" {
		t.Errorf("empty version = %q, want v2", got)
	}
	if got := versionWithSuffix("2023.4"); got != "2023.4+v2" {
		t.Errorf("version = %q, want 2023.4+v2", got)
	}
	if got := versionWithSuffix("2023.4+v2"); got != "2023.4+v2" {
		t.Errorf("suffix must not be applied twice, got %q", got)
	}
}
