package layout

import (
	"log"

	"github.com/lmoreno/resume-wizard/internal/contact"
	"github.com/lmoreno/resume-wizard/internal/entries"
	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

// Column placement gaps, in millimeters.
const (
	headerGapMM  = 1.5 // below a section header
	sectionGapMM = 2.5 // below the last line of a section
	entryGapMM   = 1.5 // between entries
	photoGapMM   = 4.0 // below the photo block
)

// Left-column sections in render order, then right-column sections.
var (
	leftSections  = []types.SectionKey{types.SectionContact, types.SectionProfile, types.SectionLanguages, types.SectionInterests}
	rightSections = []types.SectionKey{types.SectionExperience, types.SectionEducation, types.SectionSkills}
)

// Engine lays resume content out on fixed two-column pages. An Engine is
// stateless and safe for concurrent use; every Layout call owns its own
// cursor state.
type Engine struct {
	geo Geometry
}

// NewEngine returns an engine for the given geometry.
func NewEngine(geo Geometry) *Engine {
	return &Engine{geo: geo}
}

// Layout produces the full page description for a segmented document, an
// optional photo, and the dictionary whose headers label the sections.
// It never fails: malformed photos are skipped, missing sections are
// simply not drawn.
func (e *Engine) Layout(doc *types.SegmentedDocument, photo *types.Photo, dict titles.Dictionary) *types.PageDescription {
	r := &layoutRun{geo: e.geo}
	r.newPage()

	if photo != nil {
		if err := validatePhoto(photo); err != nil {
			log.Printf("layout: skipping photo: %v", err)
		} else {
			r.photo(photo)
		}
	}

	if doc.CandidateName != "" {
		r.text(colLeft, doc.CandidateName, styleName)
		r.advance(colLeft, sectionGapMM)
	}

	for _, key := range leftSections {
		lines, ok := doc.Sections[key]
		if !ok {
			continue
		}
		r.sectionHeader(colLeft, dict.Title(key))
		if key == types.SectionContact {
			for _, field := range contact.Classify(lines) {
				r.text(colLeft, field.Value, styleBody)
			}
		} else {
			for _, line := range lines {
				r.text(colLeft, line, styleBody)
			}
		}
		r.advance(colLeft, sectionGapMM)
	}

	for _, key := range rightSections {
		lines, ok := doc.Sections[key]
		if !ok {
			continue
		}
		r.sectionHeader(colRight, dict.Title(key))
		if key == types.SectionExperience || key == types.SectionEducation {
			for _, entry := range entries.Classify(lines) {
				r.entry(entry)
			}
		} else {
			for _, line := range lines {
				r.text(colRight, line, styleBody)
			}
		}
		r.advance(colRight, sectionGapMM)
	}

	return &types.PageDescription{
		Metadata: types.PageMetadata{
			WidthMM:         e.geo.PageWidth,
			HeightMM:        e.geo.PageHeight,
			MarginMM:        e.geo.Margin,
			LeftColumnWidth: e.geo.LeftColumnWidth,
		},
		Pages: r.pages,
	}
}

// column selects which cursor and horizontal band a unit flows into.
type column int

const (
	colLeft column = iota
	colRight
)

// layoutRun is the per-invocation cursor state: the current page index is
// implied by len(pages), and each column keeps its own y cursor. Page
// breaks are synchronized: overflow in either column starts a new page
// and resets both cursors.
type layoutRun struct {
	geo    Geometry
	pages  []types.Page
	leftY  float64
	rightY float64
}

func (r *layoutRun) pageIndex() int { return len(r.pages) - 1 }

func (r *layoutRun) emit(cmd types.DrawCommand) {
	cmd.Page = r.pageIndex()
	p := &r.pages[r.pageIndex()]
	p.Commands = append(p.Commands, cmd)
}

// newPage starts a page and redraws the left-column background fill.
func (r *layoutRun) newPage() {
	r.pages = append(r.pages, types.Page{PageIndex: len(r.pages)})
	r.leftY = r.geo.Margin
	r.rightY = r.geo.Margin
	r.emit(types.DrawCommand{
		Op:     types.OpRect,
		X:      0,
		Y:      0,
		Width:  r.geo.LeftColumnWidth,
		Height: r.geo.PageHeight,
		Color:  colorLeftColumn,
	})
}

func (r *layoutRun) cursor(col column) *float64 {
	if col == colLeft {
		return &r.leftY
	}
	return &r.rightY
}

// ensure makes room for a unit of the given height, breaking the page
// when it would cross the bottom margin.
func (r *layoutRun) ensure(col column, heightMM float64) {
	if *r.cursor(col)+heightMM > r.geo.PageHeight-r.geo.Margin {
		r.newPage()
	}
}

func (r *layoutRun) advance(col column, heightMM float64) {
	*r.cursor(col) += heightMM
}

func (r *layoutRun) contentX(col column) float64 {
	if col == colLeft {
		return r.geo.leftContentX()
	}
	return r.geo.rightContentX()
}

func (r *layoutRun) contentWidth(col column) float64 {
	if col == colLeft {
		return r.geo.leftContentWidth()
	}
	return r.geo.rightContentWidth()
}

// text wraps one content unit and emits a Text command per sub-line.
func (r *layoutRun) text(col column, content string, style Style) {
	lh := style.lineHeightMM()
	for _, line := range wrapText(content, r.contentWidth(col), style) {
		r.ensure(col, lh)
		r.emit(types.DrawCommand{
			Op:         types.OpText,
			X:          r.contentX(col),
			Y:          *r.cursor(col),
			Text:       line,
			FontWeight: style.Weight,
			FontSize:   style.SizePt,
			Color:      style.Color,
		})
		r.advance(col, lh)
	}
}

// sectionHeader draws a header with its column's decoration: a colored
// bar behind the text on the left, an underline rule on the right.
func (r *layoutRun) sectionHeader(col column, title string) {
	if title == "" {
		return
	}
	lh := styleSectionHeader.lineHeightMM()
	r.ensure(col, lh+headerGapMM)

	if col == colLeft {
		r.emit(types.DrawCommand{
			Op:     types.OpRect,
			X:      r.contentX(col) - 2,
			Y:      *r.cursor(col),
			Width:  r.contentWidth(col) + 4,
			Height: lh,
			Color:  colorHeaderBar,
		})
	}

	r.emit(types.DrawCommand{
		Op:         types.OpText,
		X:          r.contentX(col),
		Y:          *r.cursor(col),
		Text:       title,
		FontWeight: styleSectionHeader.Weight,
		FontSize:   styleSectionHeader.SizePt,
		Color:      styleSectionHeader.Color,
	})
	r.advance(col, lh)

	if col == colRight {
		y := *r.cursor(col)
		r.emit(types.DrawCommand{
			Op:    types.OpLine,
			X:     r.contentX(col),
			Y:     y,
			X2:    r.contentX(col) + r.contentWidth(col),
			Y2:    y,
			Color: colorRule,
		})
	}
	r.advance(col, headerGapMM)
}

// entry draws one experience/education entry in the right column.
func (r *layoutRun) entry(entry types.Entry) {
	if entry.TitlePart != "" {
		r.text(colRight, entry.TitlePart, styleEntryTitle)
	}
	if entry.LocationPart != "" {
		r.text(colRight, entry.LocationPart, styleBody)
	}
	if entry.DateRange != "" {
		r.text(colRight, entry.DateRange, styleDate)
	}
	for _, line := range entry.Description {
		r.text(colRight, line, styleBody)
	}
	r.advance(colRight, entryGapMM)
}

// photo places the portrait centered in the left column.
func (r *layoutRun) photo(photo *types.Photo) {
	size := r.geo.PhotoSize
	r.ensure(colLeft, size+photoGapMM)
	r.emit(types.DrawCommand{
		Op:     types.OpImage,
		X:      (r.geo.LeftColumnWidth - size) / 2,
		Y:      r.leftY,
		Width:  size,
		Height: size,
		Bytes:  photo.Bytes,
	})
	r.advance(colLeft, size+photoGapMM)
}
