package msoffice

import (
	"strings"
	"testing"
)

func TestDedupInheritedStyles(t *testing.T) {
	cfg := &Config{DedupInheritedStyles: true}

	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "child repeating parent value is stripped",
			html:     `<p style="color: red"><span style="color: red">x</span></p>`,
			contains: []string{`<p style="color: red"><span>x</span></p>`},
		},
		{
			name:     "child overriding parent value survives",
			html:     `<p style="color: red"><span style="color: blue">x</span></p>`,
			contains: []string{`<span style="color: blue">x</span>`},
		},
		{
			name:     "only the repeated property is stripped",
			html:     `<p style="color: red"><span style="color: red; font-weight: 700">x</span></p>`,
			contains: []string{`<span style="font-weight: 700">x</span>`},
		},
		{
			name:     "value comparison ignores case",
			html:     `<p style="color: RED"><span style="color: red">x</span></p>`,
			contains: []string{"<span>x</span>"},
		},
		{
			name:     "unstyled parent leaves child alone",
			html:     `<p><span style="color: red">x</span></p>`,
			contains: []string{`<span style="color: red">x</span>`},
		},
		{
			name: "grandparent values do not propagate",
			html: `<div style="color: red"><p><span style="color: red">x</span></p></div>`,
			// the span's parent p carries no style, so nothing is stripped
			contains: []string{`<span style="color: red">x</span>`},
		},
		{
			name:     "chain dedups against original values",
			html:     `<p style="color: red"><b style="color: red"><i style="color: red">x</i></b></p>`,
			contains: []string{"<b><i>x</i></b>"},
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
