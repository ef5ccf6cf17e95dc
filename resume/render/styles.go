package render

import "strconv"

// RunStyle captures the text formatting applied to a document element in
// every output format.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int // half-points, as in OOXML
	Color  string
}

const (
	HeadingColor = "1F2937"
	TitleColor   = "111111"
	BodyColor    = "374151"
	AccentColor  = "2563EB"
	HeadingSize  = 26
	TitleSize    = 40
	BodySize     = 21
)

// StyleMap centralizes formatting for the document elements.
var StyleMap = map[string]RunStyle{
	"title": {
		Bold:  true,
		Size:  TitleSize,
		Color: TitleColor,
	},
	"sectionHeading": {
		Bold:  true,
		Size:  HeadingSize,
		Color: HeadingColor,
	},
	"body": {
		Size:  BodySize,
		Color: BodyColor,
	},
	"meta": {
		Italic: true,
		Size:   BodySize,
		Color:  BodyColor,
	},
}

// Points returns the font size in points.
func (s RunStyle) Points() float64 {
	return float64(s.Size) / 2
}

// RGB splits the hex color into components. Invalid colors yield black.
func (s RunStyle) RGB() (int, int, int) {
	if len(s.Color) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s.Color, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
