package msoffice

import (
	"strings"
	"testing"
)

func TestFlattenStructure(t *testing.T) {
	cfg := &Config{FlattenStructure: true}

	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "single wrapper unwraps",
			html:     `<div class="OutlineElement"><p>text</p></div>`,
			contains: []string{"<p>text</p>"},
			excludes: []string{"<div"},
		},
		{
			name:     "nested wrappers collapse in one pass",
			html:     `<div><div><div><p>deep</p></div></div></div>`,
			contains: []string{"<p>deep</p>"},
			excludes: []string{"<div"},
		},
		{
			name:     "adjacent same-kind lists merge",
			html:     `<ul><li>a</li></ul><ul><li>b</li></ul>`,
			contains: []string{"<ul><li>a</li><li>b</li></ul>"},
		},
		{
			name:     "whitespace between merged lists removed",
			html:     "<ul><li>a</li></ul>\n  <ul><li>b</li></ul>",
			contains: []string{"<ul><li>a</li><li>b</li></ul>"},
		},
		{
			name:     "different kinds stay separate",
			html:     `<ul><li>a</li></ul><ol><li>b</li></ol>`,
			contains: []string{"<ul><li>a</li></ul>", "<ol><li>b</li></ol>"},
		},
		{
			name:     "content between lists blocks the merge",
			html:     `<ul><li>a</li></ul><p>between</p><ul><li>b</li></ul>`,
			contains: []string{"<ul><li>a</li></ul>", "<p>between</p>", "<ul><li>b</li></ul>"},
		},
		{
			name:     "lists exposed by unwrapping still merge",
			html:     `<div><ul><li>a</li></ul></div><div><ul><li>b</li></ul></div>`,
			contains: []string{"<ul><li>a</li><li>b</li></ul>"},
			excludes: []string{"<div"},
		},
		{
			name:     "chain of three lists merges fully",
			html:     `<ol><li>1</li></ol><ol><li>2</li></ol><ol><li>3</li></ol>`,
			contains: []string{"<ol><li>1</li><li>2</li><li>3</li></ol>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(cfg).Clean(tt.html)
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

func TestFlattenRecordsMerges(t *testing.T) {
	c := New(&Config{FlattenStructure: true})
	result := c.CleanWithStats(`<ul><li>a</li></ul><ul><li>b</li></ul><ul><li>c</li></ul>`)
	if result.Stats.ListsMerged != 2 {
		t.Errorf("expected 2 merges, got %d", result.Stats.ListsMerged)
	}
	if got := result.Stats.ElementsUnwrapped["div"]; got != 0 {
		t.Errorf("expected no div unwraps, got %d", got)
	}
}
