package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/resume-wizard/internal/types"
)

func TestClassifyTwoEntries(t *testing.T) {
	lines := []string{
		"Software Engineer, Acme Corp, Madrid",
		"2020 - Present",
		"Built distributed systems.",
		"Backend Developer, Foo Inc, Barcelona",
		"2017 - 2020",
		"Maintained APIs.",
	}

	got := Classify(lines)
	require.Len(t, got, 2)

	assert.Equal(t, types.Entry{
		TitlePart:    "Software Engineer, Acme Corp",
		LocationPart: "Madrid",
		DateRange:    "2020 - Present",
		Description:  []string{"Built distributed systems."},
	}, got[0])

	assert.Equal(t, types.Entry{
		TitlePart:    "Backend Developer, Foo Inc",
		LocationPart: "Barcelona",
		DateRange:    "2017 - 2020",
		Description:  []string{"Maintained APIs."},
	}, got[1])
}

func TestClassifyKeepsSourceOrder(t *testing.T) {
	// Entries must not be resorted by date even when out of order.
	lines := []string{
		"Junior Developer, Old Co, Valencia",
		"2010 - 2012",
		"Lead Engineer, New Co, Sevilla",
		"2018 - 2020",
	}
	got := Classify(lines)
	require.Len(t, got, 2)
	assert.Equal(t, "Junior Developer, Old Co", got[0].TitlePart)
	assert.Equal(t, "Lead Engineer, New Co", got[1].TitlePart)
}

func TestClassifyBlankSeparator(t *testing.T) {
	lines := []string{
		"MSc Artificial Intelligence at UPC",
		"2016 - 2018",
		"",
		"BSc Computer Science at UPM",
		"2012 - 2016",
	}
	got := Classify(lines)
	require.Len(t, got, 2)
	assert.Equal(t, "MSc Artificial Intelligence", got[0].TitlePart)
	assert.Equal(t, "UPC", got[0].LocationPart)
	assert.Equal(t, "BSc Computer Science", got[1].TitlePart)
	assert.Equal(t, "UPM", got[1].LocationPart)
}

func TestClassifyMultiLineDescriptionWithEmployerPhrase(t *testing.T) {
	// An " at " phrase deep inside a multi-line description must not open
	// a new entry; only the line right after the date gets that reading.
	lines := []string{
		"Software Engineer, Acme Corp, Madrid",
		"2020 - Present",
		"Led the platform team.",
		"Worked at scale on search infrastructure.",
	}

	got := Classify(lines)
	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer, Acme Corp", got[0].TitlePart)
	assert.Equal(t, []string{
		"Led the platform team.",
		"Worked at scale on search infrastructure.",
	}, got[0].Description)
}

func TestClassifyTitleRightAfterDate(t *testing.T) {
	// Directly after a date line, an employer-separator title still opens
	// the next entry even without a second comma.
	lines := []string{
		"Consultant, Initech, Austin",
		"2019 - 2021",
		"Engineer at Globex",
		"2021 - Present",
	}

	got := Classify(lines)
	require.Len(t, got, 2)
	assert.Equal(t, "Engineer", got[1].TitlePart)
	assert.Equal(t, "Globex", got[1].LocationPart)
	assert.Equal(t, "2021 - Present", got[1].DateRange)
}

func TestClassifyUnstructuredSection(t *testing.T) {
	lines := []string{"some text", "more text", "even more"}
	got := Classify(lines)
	require.Len(t, got, 1)
	assert.Equal(t, "some text", got[0].TitlePart)
	assert.Equal(t, []string{"more text", "even more"}, got[0].Description)
}

func TestClassifyLeadingDate(t *testing.T) {
	// A section that opens with a date yields an entry with an empty title.
	lines := []string{"2020 - 2021", "Freelance consulting work."}
	got := Classify(lines)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].TitlePart)
	assert.Equal(t, "2020 - 2021", got[0].DateRange)
	assert.Equal(t, []string{"Freelance consulting work."}, got[0].Description)
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Empty(t, Classify([]string{"", "  "}))
}

func TestIsDateLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"2020 - Present", true},
		{"2017 – 2020", true},
		{"2015 to 2018", true},
		{"2019 a 2021", true},
		{"2020 - Actualidad", true},
		{"Marzo de 2021", true},
		{"September 2019", true},
		{"Built distributed systems.", false},
		{"Software Engineer, Acme Corp, Madrid", false},
		{"Managed a team of 2020 people", false}, // no range, no month
	}
	for _, tt := range tests {
		if got := IsDateLine(tt.line); got != tt.want {
			t.Errorf("IsDateLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// Re-classifying a date line must be stable: the check keeps no state
// between calls.
func TestIsDateLineIdempotent(t *testing.T) {
	const line = "2020 - Present"
	for i := 0; i < 3; i++ {
		assert.True(t, IsDateLine(line))
	}
}

func TestSplitTitleLocation(t *testing.T) {
	tests := []struct {
		line     string
		title    string
		location string
	}{
		{"Software Engineer, Acme Corp, Madrid", "Software Engineer, Acme Corp", "Madrid"},
		{"Ingeniera de Datos en Telefónica", "Ingeniera de Datos", "Telefónica"},
		{"Engineer at Google", "Engineer", "Google"},
		{"Software Engineer", "Software Engineer", ""},
		{"Engineer, Acme", "Engineer, Acme", ""}, // one comma is not enough
	}
	for _, tt := range tests {
		title, location := SplitTitleLocation(tt.line)
		if title != tt.title || location != tt.location {
			t.Errorf("SplitTitleLocation(%q) = (%q, %q), want (%q, %q)",
				tt.line, title, location, tt.title, tt.location)
		}
	}
}
