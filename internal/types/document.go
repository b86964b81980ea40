//nolint:revive // types is a standard Go package name pattern
package types

// SegmentedDocument is the result of splitting a generated resume body
// into named sections. Sections absent from the input are absent from the
// map; line order within a section matches the input.
type SegmentedDocument struct {
	CandidateName string                  `json:"candidate_name"`
	Sections      map[SectionKey][]string `json:"sections"`
	Order         []SectionKey            `json:"order"` // keys in first-seen input order
}

// Lines returns the content lines for a section, or nil when the section
// was not present in the input.
func (d *SegmentedDocument) Lines(key SectionKey) []string {
	if d.Sections == nil {
		return nil
	}
	return d.Sections[key]
}

// ContactKind labels a single line of the contact section.
type ContactKind string

const (
	ContactEmail     ContactKind = "email"
	ContactPhone     ContactKind = "phone"
	ContactWeb       ContactKind = "web"
	ContactAddress   ContactKind = "address"
	ContactBirthdate ContactKind = "birthdate"
	ContactOther     ContactKind = "other"
)

// ContactField is one classified contact line. Value has any recognized
// label prefix ("Email:", "Tel:", ...) already stripped.
type ContactField struct {
	Kind    ContactKind `json:"kind"`
	RawLine string      `json:"raw_line"`
	Value   string      `json:"value"`
}

// Entry is one structured item inside an experience or education section.
// Entries keep source order; nothing is resorted by date.
type Entry struct {
	TitlePart    string   `json:"title_part"`
	LocationPart string   `json:"location_part,omitempty"`
	DateRange    string   `json:"date_range,omitempty"`
	Description  []string `json:"description,omitempty"`
}

// Photo carries optional portrait bytes supplied alongside the resume text.
type Photo struct {
	MIMEType string `json:"mime_type"` // image/png or image/jpeg
	Bytes    []byte `json:"bytes"`
}
