package catalog

// Position matrices: insurer -> surface category -> finish -> work package.
// Static reference data supplied with the application, keyed in folded
// form. Every step name is expected to resolve to a catalog item name of
// the same insurer; unresolved steps price at zero and are kept visible so
// catalog gaps surface in the estimate instead of disappearing.
//
// The finish "reģipsis ar krāsojamām tapetēm vai tapetēm" branches two
// ways: the paintable-wallpaper variant adds priming and painting steps,
// the plain-wallpaper variant ends at wallpapering.

const (
	VariantPaintable = "krāsojamās tapetes"
	VariantWallpaper = "tapetes"
)

var surfaceCategoryOrder = []string{"griesti", "sienas"}

var positionMatrices = map[string]map[string]map[string]finishEntry{
	"bta": {
		"griesti": {
			"krasots betons": {steps: []string{
				"Griestu virsmas attīrīšana",
				"Gruntēšana",
				"Špaktelēšana",
				"Krāsošana divās kārtās",
			}},
			"regipsis": {steps: []string{
				"Reģipša demontāža",
				"Reģipša plākšņu montāža pie griestiem",
				"Šuvju aizdare un slīpēšana",
				"Gruntēšana",
				"Krāsošana divās kārtās",
			}},
			"tapetes": {steps: []string{
				"Tapešu noņemšana",
				"Virsmas sagatavošana",
				"Tapešu līmēšana",
			}},
		},
		"sienas": {
			"krasots betons": {steps: []string{
				"Sienu virsmas attīrīšana",
				"Gruntēšana",
				"Špaktelēšana",
				"Krāsošana divās kārtās",
			}},
			"regipsis ar krasojamam tapetem vai tapetem": {variants: map[string][]string{
				"krasojamas tapetes": {
					"Reģipša plākšņu montāža pie sienām",
					"Šuvju aizdare un slīpēšana",
					"Krāsojamo tapešu līmēšana",
					"Gruntēšana",
					"Krāsošana divās kārtās",
				},
				"tapetes": {
					"Reģipša plākšņu montāža pie sienām",
					"Šuvju aizdare un slīpēšana",
					"Tapešu līmēšana",
				},
			}},
			"tapetes": {steps: []string{
				"Tapešu noņemšana",
				"Virsmas sagatavošana",
				"Tapešu līmēšana",
			}},
		},
	},

	"balta": {
		"griesti": {
			"krasots betons": {steps: []string{
				"Griestu virsmas attīrīšana",
				"Gruntēšana",
				"Krāsošana divās kārtās",
			}},
			"regipsis": {steps: []string{
				"Reģipša plākšņu montāža pie griestiem",
				"Šuvju aizdare un slīpēšana",
				"Krāsošana divās kārtās",
			}},
		},
		"sienas": {
			"krasots betons": {steps: []string{
				"Sienu virsmas attīrīšana",
				"Gruntēšana",
				"Krāsošana divās kārtās",
			}},
			"regipsis ar krasojamam tapetem vai tapetem": {variants: map[string][]string{
				"krasojamas tapetes": {
					"Reģipša plākšņu montāža pie sienām",
					"Krāsojamo tapešu līmēšana",
					"Krāsošana divās kārtās",
				},
				"tapetes": {
					"Reģipša plākšņu montāža pie sienām",
					"Tapešu līmēšana",
				},
			}},
		},
	},

	// Swedbank supplies a coded catalog; its matrix lists item id codes
	// rather than narrative names.
	"swedbank": {
		"griesti": {
			"krasots betons": {steps: []string{"GRI:001", "GRI:004", "GRI:005"}},
			"regipsis":       {steps: []string{"GRI:002", "GRI:003", "GRI:004", "GRI:005"}},
		},
		"sienas": {
			"krasots betons": {steps: []string{"SIE:001", "SIE:004", "SIE:005"}},
			"regipsis ar krasojamam tapetem vai tapetem": {variants: map[string][]string{
				"krasojamas tapetes": {"SIE:002", "SIE:003", "SIE:006", "SIE:005"},
				"tapetes":            {"SIE:002", "SIE:003", "SIE:007"},
			}},
		},
	},
}
