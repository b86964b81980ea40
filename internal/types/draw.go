//nolint:revive // types is a standard Go package name pattern
package types

// DrawOp discriminates the draw command union.
type DrawOp string

const (
	OpText  DrawOp = "text"
	OpImage DrawOp = "image"
	OpRect  DrawOp = "rect"
	OpLine  DrawOp = "line"
)

// FontWeight selects the text style for a Text command.
type FontWeight string

const (
	WeightRegular FontWeight = "regular"
	WeightBold    FontWeight = "bold"
	WeightItalic  FontWeight = "italic"
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// DrawCommand is one abstract drawing instruction. Coordinates and sizes
// are millimeters from the top-left corner of the page. Only the fields
// relevant to Op are populated.
type DrawCommand struct {
	Op   DrawOp `json:"op"`
	Page int    `json:"page"`

	// Text
	X          float64    `json:"x,omitempty"`
	Y          float64    `json:"y,omitempty"`
	Text       string     `json:"text,omitempty"`
	FontWeight FontWeight `json:"font_weight,omitempty"`
	FontSize   float64    `json:"font_size,omitempty"` // points
	Color      Color      `json:"color"`

	// Image / Rect
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Bytes  []byte  `json:"bytes,omitempty"`

	// Line
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`
}

// Page is the ordered command list for one output page.
type Page struct {
	PageIndex int           `json:"page_index"`
	Commands  []DrawCommand `json:"commands"`
}

// PageMetadata describes the fixed page geometry the commands assume.
type PageMetadata struct {
	WidthMM         float64 `json:"width_mm"`
	HeightMM        float64 `json:"height_mm"`
	MarginMM        float64 `json:"margin_mm"`
	LeftColumnWidth float64 `json:"left_column_width_mm"`
}

// PageDescription is the full layout result handed to a renderer.
type PageDescription struct {
	Metadata PageMetadata `json:"metadata"`
	Pages    []Page       `json:"pages"`
}
