// Package layout flows segmented, classified resume content into a
// fixed-geometry, two-column, multi-page description made of abstract
// draw commands. The computation is pure: text and photo bytes in, page
// description out, no I/O and no shared state between invocations.
package layout

import "github.com/lmoreno/resume-wizard/internal/types"

// ptToMM converts font points to millimeters (1 pt = 1/72 inch).
const ptToMM = 25.4 / 72.0

// Geometry holds the fixed page measurements in millimeters.
type Geometry struct {
	PageWidth       float64
	PageHeight      float64
	Margin          float64
	LeftColumnWidth float64 // width of the shaded left column, page edge included
	ColumnGap       float64 // gap between the shaded column and right content
	PhotoSize       float64 // square photo edge length
}

// DefaultGeometry returns the A4 geometry the wizard ships with.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       210,
		PageHeight:      297,
		Margin:          12,
		LeftColumnWidth: 70,
		ColumnGap:       6,
		PhotoSize:       35,
	}
}

// leftContentX is the x origin for left-column content.
func (g Geometry) leftContentX() float64 { return g.Margin }

// leftContentWidth is the usable width inside the shaded column.
func (g Geometry) leftContentWidth() float64 { return g.LeftColumnWidth - 2*g.Margin }

// rightContentX is the x origin for right-column content.
func (g Geometry) rightContentX() float64 { return g.LeftColumnWidth + g.ColumnGap }

// rightContentWidth is the usable width of the right column.
func (g Geometry) rightContentWidth() float64 {
	return g.PageWidth - g.Margin - g.rightContentX()
}

// usableHeight is the vertical space available for content on one page.
func (g Geometry) usableHeight() float64 { return g.PageHeight - 2*g.Margin }

// Style bundles the text attributes of one content role.
type Style struct {
	Weight  types.FontWeight
	SizePt  float64
	Color   types.Color
	LineGap float64 // multiplier on the font size for line advance
	CharAdv float64 // average glyph advance as a fraction of the font size
}

// The style table is the engine's styling state machine: each content role
// maps to exactly one style.
var (
	styleName = Style{Weight: types.WeightBold, SizePt: 16, Color: types.Color{R: 33, G: 33, B: 33}, LineGap: 1.5, CharAdv: 0.52}

	styleSectionHeader = Style{Weight: types.WeightBold, SizePt: 11, Color: types.Color{R: 33, G: 33, B: 33}, LineGap: 1.7, CharAdv: 0.52}

	styleEntryTitle = Style{Weight: types.WeightBold, SizePt: 10.5, Color: types.Color{R: 33, G: 33, B: 33}, LineGap: 1.5, CharAdv: 0.52}

	styleDate = Style{Weight: types.WeightItalic, SizePt: 8.5, Color: types.Color{R: 120, G: 120, B: 120}, LineGap: 1.4, CharAdv: 0.48}

	styleBody = Style{Weight: types.WeightRegular, SizePt: 9.5, Color: types.Color{R: 55, G: 55, B: 55}, LineGap: 1.45, CharAdv: 0.5}
)

// Background fills.
var (
	colorLeftColumn = types.Color{R: 236, G: 240, B: 243}
	colorHeaderBar  = types.Color{R: 208, G: 219, B: 227}
	colorRule       = types.Color{R: 160, G: 170, B: 178}
)

// lineHeightMM is the vertical advance for one line of this style.
func (s Style) lineHeightMM() float64 { return s.SizePt * s.LineGap * ptToMM }

// charWidthMM is the estimated average glyph width for this style.
func (s Style) charWidthMM() float64 { return s.SizePt * s.CharAdv * ptToMM }
