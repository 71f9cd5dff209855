package msoffice

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about what the cleaner did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Element counts
	ElementsRemoved   map[string]int `json:"elements_removed"`   // tag -> count
	ElementsUnwrapped map[string]int `json:"elements_unwrapped"` // tag -> count

	// Reconstruction
	HeadingsRebuilt int `json:"headings_rebuilt"`
	ListsRebuilt    int `json:"lists_rebuilt"`
	ListItems       int `json:"list_items"`
	ListsMerged     int `json:"lists_merged"`

	// Style/attribute cleaning
	AttributesRemoved int `json:"attributes_removed"`
	StylesDropped     int `json:"styles_dropped"` // declarations, not attributes
	ExcelRulesApplied int `json:"excel_rules_applied"`

	// Timing
	ParseDuration     time.Duration `json:"parse_duration_ms"`
	TransformDuration time.Duration `json:"transform_duration_ms"`
	OutputDuration    time.Duration `json:"output_duration_ms"`
	TotalDuration     time.Duration `json:"total_duration_ms"`
}

// NewStats creates a Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		ElementsRemoved:   make(map[string]int),
		ElementsUnwrapped: make(map[string]int),
	}
}

// RecordRemoval records that an element was deleted with its content.
func (s *Stats) RecordRemoval(tag string) {
	s.ElementsRemoved[strings.ToLower(tag)]++
}

// RecordUnwrap records that an element was replaced by its children.
func (s *Stats) RecordUnwrap(tag string) {
	s.ElementsUnwrapped[strings.ToLower(tag)]++
}

// TotalElementsRemoved returns the sum of all removed elements.
func (s *Stats) TotalElementsRemoved() int {
	total := 0
	for _, count := range s.ElementsRemoved {
		total += count
	}
	return total
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	if len(s.ElementsRemoved) > 0 {
		parts := make([]string, 0, len(s.ElementsRemoved))
		for tag, count := range s.ElementsRemoved {
			parts = append(parts, fmt.Sprintf("%s=%d", tag, count))
		}
		sb.WriteString("Removed by tag: " + strings.Join(parts, ", ") + "\n")
	}
	if len(s.ElementsUnwrapped) > 0 {
		parts := make([]string, 0, len(s.ElementsUnwrapped))
		for tag, count := range s.ElementsUnwrapped {
			parts = append(parts, fmt.Sprintf("%s=%d", tag, count))
		}
		sb.WriteString("Unwrapped by tag: " + strings.Join(parts, ", ") + "\n")
	}

	if s.HeadingsRebuilt > 0 {
		sb.WriteString(fmt.Sprintf("Headings rebuilt: %d\n", s.HeadingsRebuilt))
	}
	if s.ListsRebuilt > 0 {
		sb.WriteString(fmt.Sprintf("Lists rebuilt: %d (%d items, %d merges)\n",
			s.ListsRebuilt, s.ListItems, s.ListsMerged))
	}
	if s.AttributesRemoved > 0 {
		sb.WriteString(fmt.Sprintf("Attributes removed: %d\n", s.AttributesRemoved))
	}
	if s.StylesDropped > 0 {
		sb.WriteString(fmt.Sprintf("Style declarations dropped: %d\n", s.StylesDropped))
	}
	if s.ExcelRulesApplied > 0 {
		sb.WriteString(fmt.Sprintf("Excel class rules baked in: %d\n", s.ExcelRulesApplied))
	}

	sb.WriteString(fmt.Sprintf("Timing: parse=%v, transform=%v, output=%v, total=%v\n",
		s.ParseDuration.Round(time.Millisecond),
		s.TransformDuration.Round(time.Millisecond),
		s.OutputDuration.Round(time.Millisecond),
		s.TotalDuration.Round(time.Millisecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during cleaning.
type Warning struct {
	Phase   string `json:"phase"`   // "parse", "excel", "transform", "output"
	Message string `json:"message"` // Human-readable description
	Context string `json:"context"` // Underlying error or element context
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned fragment. When the input cannot be processed
	// it holds the original input: a byte-identical result is a silent
	// no-op, not a success signal.
	Content string `json:"content"`

	// Word and Excel record what the source classifier saw.
	Word  bool `json:"word"`
	Excel bool `json:"excel"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
