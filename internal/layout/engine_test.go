package layout

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

func testDict() titles.Dictionary {
	return titles.ForLanguage(types.LanguageEnglish)
}

func testDoc() *types.SegmentedDocument {
	return &types.SegmentedDocument{
		CandidateName: "Jane Doe",
		Sections: map[types.SectionKey][]string{
			types.SectionContact: {"jane@example.com", "600 123 456"},
			types.SectionProfile: {"Senior engineer focused on distributed systems."},
			types.SectionExperience: {
				"Software Engineer, Acme Corp, Madrid",
				"2020 - Present",
				"Built distributed systems.",
			},
			types.SectionSkills: {"Go, PostgreSQL, Kubernetes"},
		},
		Order: []types.SectionKey{
			types.SectionContact, types.SectionProfile,
			types.SectionExperience, types.SectionSkills,
		},
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func countOp(pd *types.PageDescription, op types.DrawOp) int {
	n := 0
	for _, p := range pd.Pages {
		for _, c := range p.Commands {
			if c.Op == op {
				n++
			}
		}
	}
	return n
}

// backgroundRects counts the full-height left-column fill, which must be
// redrawn exactly once per page.
func backgroundRects(pd *types.PageDescription, geo Geometry) int {
	n := 0
	for _, p := range pd.Pages {
		for _, c := range p.Commands {
			if c.Op == types.OpRect && c.Height == geo.PageHeight {
				n++
			}
		}
	}
	return n
}

func TestLayoutSinglePage(t *testing.T) {
	engine := NewEngine(DefaultGeometry())
	pd := engine.Layout(testDoc(), nil, testDict())

	require.Len(t, pd.Pages, 1)
	assert.Equal(t, 1, backgroundRects(pd, DefaultGeometry()))
	assert.Zero(t, countOp(pd, types.OpImage))

	// Name renders once, bold, at the larger size.
	var nameCmds []types.DrawCommand
	for _, c := range pd.Pages[0].Commands {
		if c.Op == types.OpText && c.Text == "Jane Doe" {
			nameCmds = append(nameCmds, c)
		}
	}
	require.Len(t, nameCmds, 1)
	assert.Equal(t, types.WeightBold, nameCmds[0].FontWeight)
	assert.Equal(t, styleName.SizePt, nameCmds[0].FontSize)
}

func TestLayoutMissingSectionsAreSkipped(t *testing.T) {
	engine := NewEngine(DefaultGeometry())
	pd := engine.Layout(testDoc(), nil, testDict())

	for _, p := range pd.Pages {
		for _, c := range p.Commands {
			if c.Op == types.OpText {
				assert.NotEqual(t, "EDUCATION", c.Text)
				assert.NotEqual(t, "LANGUAGES", c.Text)
				assert.NotEqual(t, "INTERESTS", c.Text)
			}
		}
	}
}

func TestLayoutStyling(t *testing.T) {
	engine := NewEngine(DefaultGeometry())
	pd := engine.Layout(testDoc(), nil, testDict())

	byText := map[string]types.DrawCommand{}
	for _, c := range pd.Pages[0].Commands {
		if c.Op == types.OpText {
			byText[c.Text] = c
		}
	}

	title, ok := byText["Software Engineer, Acme Corp"]
	require.True(t, ok, "entry title missing: %v", byText)
	assert.Equal(t, types.WeightBold, title.FontWeight)

	date, ok := byText["2020 - Present"]
	require.True(t, ok)
	assert.Equal(t, types.WeightItalic, date.FontWeight)
	assert.Equal(t, styleDate.Color, date.Color)

	desc, ok := byText["Built distributed systems."]
	require.True(t, ok)
	assert.Equal(t, types.WeightRegular, desc.FontWeight)

	// Right-column headers carry an underline rule.
	assert.GreaterOrEqual(t, countOp(&types.PageDescription{Pages: pd.Pages}, types.OpLine), 2)
}

func TestLayoutPaginationDeterminism(t *testing.T) {
	geo := DefaultGeometry()
	engine := NewEngine(geo)

	// A profile long enough to spill over several pages; each line is
	// short enough to wrap to exactly one sub-line.
	const numLines = 150
	lines := make([]string, numLines)
	for i := range lines {
		lines[i] = fmt.Sprintf("profile line %d", i)
	}
	doc := &types.SegmentedDocument{
		Sections: map[types.SectionKey][]string{types.SectionProfile: lines},
		Order:    []types.SectionKey{types.SectionProfile},
	}

	pd := engine.Layout(doc, nil, testDict())

	// Expected page count: the first page loses the header block, the
	// rest hold floor(usable/lineHeight) lines each.
	lh := styleBody.lineHeightMM()
	headerBlock := styleSectionHeader.lineHeightMM() + headerGapMM
	firstPage := math.Floor((geo.usableHeight() - headerBlock) / lh)
	perPage := math.Floor(geo.usableHeight() / lh)
	want := 1 + int(math.Ceil((numLines-firstPage)/perPage))

	assert.Len(t, pd.Pages, want)
	assert.Equal(t, want, backgroundRects(pd, geo), "background fill must be redrawn on every page")

	// Same input, same output.
	again := engine.Layout(doc, nil, testDict())
	assert.Equal(t, pd, again)
}

func TestLayoutPageIndexesAreSequential(t *testing.T) {
	engine := NewEngine(DefaultGeometry())
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = fmt.Sprintf("experience detail %d", i)
	}
	doc := &types.SegmentedDocument{
		Sections: map[types.SectionKey][]string{types.SectionExperience: lines},
		Order:    []types.SectionKey{types.SectionExperience},
	}

	pd := engine.Layout(doc, nil, testDict())
	require.Greater(t, len(pd.Pages), 1)
	for i, p := range pd.Pages {
		assert.Equal(t, i, p.PageIndex)
		for _, c := range p.Commands {
			assert.Equal(t, i, c.Page)
		}
	}
}

func TestLayoutPhoto(t *testing.T) {
	geo := DefaultGeometry()
	engine := NewEngine(geo)

	photo := &types.Photo{MIMEType: "image/png", Bytes: tinyPNG(t)}
	pd := engine.Layout(testDoc(), photo, testDict())

	var img *types.DrawCommand
	for _, c := range pd.Pages[0].Commands {
		if c.Op == types.OpImage {
			cc := c
			img = &cc
		}
	}
	require.NotNil(t, img, "expected an image command")
	assert.Equal(t, geo.PhotoSize, img.Width)
	assert.Equal(t, geo.PhotoSize, img.Height)
	// Centered in the left column.
	assert.InDelta(t, (geo.LeftColumnWidth-geo.PhotoSize)/2, img.X, 0.001)
}

func TestLayoutCorruptPhotoIsNonFatal(t *testing.T) {
	engine := NewEngine(DefaultGeometry())

	photo := &types.Photo{MIMEType: "image/png", Bytes: []byte("definitely not an image")}
	pd := engine.Layout(testDoc(), photo, testDict())

	assert.Zero(t, countOp(pd, types.OpImage), "corrupt photo must be skipped")
	assert.NotEmpty(t, pd.Pages)
	// Content still renders fully.
	found := false
	for _, c := range pd.Pages[0].Commands {
		if c.Op == types.OpText && c.Text == "Jane Doe" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLayoutMetadata(t *testing.T) {
	geo := DefaultGeometry()
	pd := NewEngine(geo).Layout(testDoc(), nil, testDict())
	assert.Equal(t, 210.0, pd.Metadata.WidthMM)
	assert.Equal(t, 297.0, pd.Metadata.HeightMM)
	assert.Equal(t, geo.LeftColumnWidth, pd.Metadata.LeftColumnWidth)
}
