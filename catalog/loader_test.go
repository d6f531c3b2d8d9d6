package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadCatalogPrefersV2(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "bta_v2.json", `{
		"insurer": "bta", "version": "2024.1", "currency": "EUR",
		"items": [{"id": "GRI:001", "category": "Griesti", "name": "Gruntēšana", "unit": "m²", "labor": 2.5}]
	}`)
	writeCatalogFile(t, dir, "bta.json", `{
		"items": [{"kategorija": "Griesti", "nosaukums": "Vecā pozīcija", "cena": 1.0}]
	}`)

	c, err := LoadCatalog(dir, "bta")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Version != "2024.1+v2" {
		t.Errorf("version = %q", c.Version)
	}
	if len(c.Items) != 1 || c.Items[0].Name != "Gruntēšana" {
		t.Errorf("v2 file should win, got %+v", c.Items)
	}
	if c.Items[0].Unit != UnitM2 {
		t.Errorf("unit not normalized: %q", c.Items[0].Unit)
	}
}

func TestLoadCatalogLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "balta.json", `{
		"items": [{"kategorija": "Sienas", "nosaukums": "Gruntēšana", "cena": 3.0}]
	}`)

	c, err := LoadCatalog(dir, "balta")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Insurer != "balta" {
		t.Errorf("insurer should default from the filename, got %q", c.Insurer)
	}
	if len(c.Items) != 1 || c.Items[0].Labor != 3.0 {
		t.Errorf("legacy price-only row should land in labor, got %+v", c.Items)
	}
}

func TestLoadCatalogAttachesLegacyChildren(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "bta_v2.json", `{
		"insurer": "bta",
		"items": [{"id": "F9", "category": "Fasāde", "name": "Y", "unit": "m2", "labor": 4.0}]
	}`)
	writeCatalogFile(t, dir, "bta.json", `{
		"items": [{
			"id": "F1", "category": "Fasāde", "name": "Y",
			"children": [{"name": "Board", "coeff": 2, "materiāli": 9.2}]
		}]
	}`)

	c, err := LoadCatalog(dir, "bta")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	idx := NewItemIndex(c.Items)
	parent := idx.ByID("F9")
	if parent == nil {
		t.Fatal("v2 parent missing")
	}
	children := ResolveChildren(parent, idx)
	if len(children) != 1 || children[0].Coeff != 2 || children[0].Materials != 9.2 {
		t.Errorf("legacy children not attached through the loader: %+v", children)
	}
}

func TestLoadCatalogLegacyOnlyAttachesOwnChildren(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "bta.json", `{
		"items": [{
			"id": "GRD:002", "category": "Grīda", "name": "Lamināta ieklāšana",
			"unit": "m2", "cena": 16.0,
			"apakšpozīcijas": [{"name": "Lamināts", "unit": "m2", "cena": 10.9, "daudzums": 1.05}]
		}]
	}`)

	c, err := LoadCatalog(dir, "bta")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	idx := NewItemIndex(c.Items)
	parent := idx.ByID("GRD:002")
	if parent == nil {
		t.Fatal("parent missing")
	}
	children := ResolveChildren(parent, idx)
	if len(children) != 1 {
		t.Fatalf("legacy-only load should attach embedded children, got %+v", children)
	}
	if children[0].Name != "Lamināts" || children[0].Coeff != 1.05 {
		t.Errorf("child = %+v", children[0])
	}
	if children[0].Labor != 10.9 {
		t.Errorf("price-only child cost should land in labor, got %+v", children[0])
	}
}

func TestLoadCatalogMissing(t *testing.T) {
	if _, err := LoadCatalog(t.TempDir(), "neviens"); err == nil {
		t.Error("expected an error when no candidate file exists")
	}
}

func TestStoreFallsBackToEmptyCatalog(t *testing.T) {
	store := NewStore(t.TempDir())

	c := store.Catalog("bta")
	if c == nil {
		t.Fatal("store must never return nil")
	}
	if len(c.Items) != 0 {
		t.Errorf("failed load should cache an empty catalog, got %d items", len(c.Items))
	}

	// Second call hits the cache, same instance.
	if store.Catalog("bta") != c {
		t.Error("catalog should be loaded at most once per insurer")
	}
	if got := store.Insurers(); len(got) != 1 || got[0] != "bta" {
		t.Errorf("Insurers() = %v", got)
	}
}

func TestStoreCaseInsensitiveInsurer(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "bta.json", `{"items": []}`)
	store := NewStore(dir)

	if store.Catalog("BTA") != store.Catalog("bta") {
		t.Error("insurer lookup should be case-insensitive")
	}
}

func TestStoreBadJSONFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "bta.json", `{not json`)
	store := NewStore(dir)

	if c := store.Catalog("bta"); len(c.Items) != 0 {
		t.Errorf("parse failure should fall back to empty catalog, got %d items", len(c.Items))
	}
}
