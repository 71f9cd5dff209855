package msoffice

import (
	"strings"
	"testing"
)

// headingConfig runs only the heading pass so structural assertions are not
// obscured by the cleanup stages.
func headingConfig() *Config {
	return &Config{RebuildHeadings: true}
}

func TestReconstructHeadings(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "explicit heading role with level",
			html:     `<p role="heading" aria-level="2">Title</p>`,
			contains: []string{"<h2>Title</h2>"},
			excludes: []string{"<p"},
		},
		{
			name:     "paragraph style marker",
			html:     `<p><span data-ccp-parastyle="heading 3">Section</span></p>`,
			contains: []string{"<h3>"},
			excludes: []string{"<p>"},
		},
		{
			name:     "custom heading style falls back to font size",
			html:     `<p><span data-ccp-parastyle="heading 9" style="font-size: 16pt">Big</span></p>`,
			contains: []string{"<h2>"},
			excludes: []string{"<h9>", "<p>"},
		},
		{
			name:     "legacy mso class",
			html:     `<p class=MsoHeading4>Old</p>`,
			contains: []string{"<h4>Old</h4>"},
		},
		{
			name:     "adjacent heading paragraphs stay siblings",
			html:     `<p class=MsoHeading2>A</p><p class=MsoHeading2>B</p>`,
			contains: []string{"<h2>A</h2>", "<h2>B</h2>"},
			excludes: []string{"<h2>A</h2><h2>B</h2><h2>"},
		},
		{
			name:     "inline formatting preserved",
			html:     `<p role="heading" aria-level="1">Plain <b>bold</b></p>`,
			contains: []string{"<h1>Plain <b>bold</b></h1>"},
		},
		{
			name:     "normal paragraph untouched",
			html:     `<p class=MsoNormal><span style="font-size: 11pt">Body text</span></p>`,
			contains: []string{"<p", "Body text"},
			excludes: []string{"<h"},
		},
		{
			name:     "normal parastyle untouched",
			html:     `<p><span data-ccp-parastyle="Normal">Body</span></p>`,
			contains: []string{"<p>"},
			excludes: []string{"<h"},
		},
		{
			name:     "aria level out of range ignored",
			html:     `<p role="heading" aria-level="9">Deep</p>`,
			contains: []string{"<p"},
			excludes: []string{"<h9>", "<h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(headingConfig())
			got, err := c.Clean(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("expected output to contain %q, got: %s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("expected output to not contain %q, got: %s", s, got)
				}
			}
		})
	}
}

func TestFontSizeLevel(t *testing.T) {
	tests := []struct {
		size string
		want int
	}{
		{"24pt", 1},
		{"20pt", 1},
		{"18pt", 2},
		{"16pt", 2},
		{"14pt", 3},
		{"13pt", 4},
		{"12pt", 4},
		{"10pt", 5},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			html := `<p><span data-ccp-parastyle="heading 7" style="font-size: ` + tt.size + `">x</span></p>`
			c := New(headingConfig())
			got, _ := c.Clean(html)
			want := "<h" + string(rune('0'+tt.want)) + ">"
			if !strings.Contains(got, want) {
				t.Errorf("font-size %s: expected %s, got: %s", tt.size, want, got)
			}
		})
	}
}

func TestFontSizeTakesMaximum(t *testing.T) {
	html := `<p role="heading"><span style="font-size: 10pt">small</span><span style="font-size: 20pt">big</span></p>`
	c := New(headingConfig())
	got, _ := c.Clean(html)
	if !strings.Contains(got, "<h1>") {
		t.Errorf("expected largest descendant size to decide the level, got: %s", got)
	}
}
