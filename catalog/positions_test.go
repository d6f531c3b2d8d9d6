package catalog

import (
	"reflect"
	"testing"
)

func TestResolveWorkPackageFlat(t *testing.T) {
	steps := ResolveWorkPackage("bta", "Griesti", "Krāsots betons", "")
	want := []string{
		"Griestu virsmas attīrīšana",
		"Gruntēšana",
		"Špaktelēšana",
		"Krāsošana divās kārtās",
	}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("work package = %v, want %v", steps, want)
	}
}

func TestResolveWorkPackageVariants(t *testing.T) {
	finish := "Reģipsis ar krāsojamām tapetēm vai tapetēm"

	paintable := ResolveWorkPackage("bta", "Sienas", finish, VariantPaintable)
	wallpaper := ResolveWorkPackage("bta", "Sienas", finish, VariantWallpaper)

	if len(paintable) == 0 || len(wallpaper) == 0 {
		t.Fatalf("both variants must resolve: %d/%d steps", len(paintable), len(wallpaper))
	}
	if reflect.DeepEqual(paintable, wallpaper) {
		t.Error("the two variants must differ")
	}
	if paintable[len(paintable)-1] != "Krāsošana divās kārtās" {
		t.Errorf("paintable variant should end with painting, got %q", paintable[len(paintable)-1])
	}

	if steps := ResolveWorkPackage("bta", "Sienas", finish, "nezināms variants"); len(steps) != 0 {
		t.Errorf("unknown variant must yield an empty package, got %v", steps)
	}
}

func TestResolveWorkPackageMissingEntries(t *testing.T) {
	cases := [][4]string{
		{"nezināms apdrošinātājs", "Griesti", "Krāsots betons", ""},
		{"bta", "Pagrabs", "Krāsots betons", ""},
		{"bta", "Griesti", "Marmora flīzes", ""},
	}
	for _, c := range cases {
		if steps := ResolveWorkPackage(c[0], c[1], c[2], c[3]); len(steps) != 0 {
			t.Errorf("ResolveWorkPackage(%v) = %v, want empty", c, steps)
		}
	}
}

func TestResolveWorkPackageSwedbankCodes(t *testing.T) {
	steps := ResolveWorkPackage("Swedbank", "Griesti", "Krāsots betons", "")
	want := []string{"GRI:001", "GRI:004", "GRI:005"}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("swedbank coded package = %v, want %v", steps, want)
	}
}

func TestResolveWorkPackageCopyIsolation(t *testing.T) {
	first := ResolveWorkPackage("bta", "Griesti", "Krāsots betons", "")
	first[0] = "sabojāts"

	second := ResolveWorkPackage("bta", "Griesti", "Krāsots betons", "")
	if second[0] == "sabojāts" {
		t.Error("returned steps must be a copy, not the matrix backing array")
	}
}

func TestSurfaceCategories(t *testing.T) {
	got := SurfaceCategories("bta")
	if !reflect.DeepEqual(got, []string{"griesti", "sienas"}) {
		t.Errorf("SurfaceCategories(bta) = %v", got)
	}
	if cats := SurfaceCategories("nezināms"); cats != nil {
		t.Errorf("unknown insurer should have no categories, got %v", cats)
	}
}

func TestStepItem(t *testing.T) {
	items := []CatalogItem{
		{ID: "GRI:001", Category: "Griesti", Name: "Griestu virsmas attīrīšana"},
	}
	idx := NewItemIndex(items)

	if it := StepItem(idx, "GRI:001"); it == nil {
		t.Error("coded step should resolve by id")
	}
	if it := StepItem(idx, "griestu virsmas attīrīšana"); it == nil {
		t.Error("narrative step should resolve by folded name")
	}
	if it := StepItem(idx, "nav katalogā"); it != nil {
		t.Error("unknown step should resolve to nil")
	}
}
