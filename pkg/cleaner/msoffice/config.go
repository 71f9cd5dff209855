package msoffice

// Config toggles the individual pipeline stages. The zero value disables
// everything; use DefaultConfig for the full pipeline.
type Config struct {
	// === Structural reconstruction ===

	// RebuildHeadings converts heading-marked paragraphs into h1-h6.
	RebuildHeadings bool `json:"rebuild_headings"`

	// RebuildLists reconstructs nested lists from both Word encodings.
	RebuildLists bool `json:"rebuild_lists"`

	// FlattenStructure unwraps layout containers and merges the list
	// fragments per-item wrapping leaves behind.
	FlattenStructure bool `json:"flatten_structure"`

	// === Cleanup ===

	// RemoveNoise strips comments, namespaced tags, marker spans,
	// unreachable images and other vendor residue.
	RemoveNoise bool `json:"remove_noise"`

	// NormalizeStyles reduces style attributes to the visual keep-set and
	// drops default-valued declarations.
	NormalizeStyles bool `json:"normalize_styles"`

	// NormalizeAttributes applies the per-tag attribute allow-list.
	NormalizeAttributes bool `json:"normalize_attributes"`

	// DedupInheritedStyles removes declarations restating the parent's.
	DedupInheritedStyles bool `json:"dedup_inherited_styles"`

	// CleanupWhitespace unwraps dead spans, normalizes non-breaking spaces
	// and removes emptied blocks.
	CleanupWhitespace bool `json:"cleanup_whitespace"`

	// === Source handling ===

	// BakeExcelStyles folds class rules from embedded Excel stylesheets
	// into inline styles before the head is discarded. Only consulted when
	// the source classifies as Excel.
	BakeExcelStyles bool `json:"bake_excel_styles"`

	// KeepLocalImages keeps img elements whose source is a document-local
	// reference. Such references cannot resolve outside the original
	// document, so the default is to drop them.
	KeepLocalImages bool `json:"keep_local_images"`
}

// DefaultConfig enables the full pipeline.
func DefaultConfig() *Config {
	return &Config{
		RebuildHeadings:      true,
		RebuildLists:         true,
		FlattenStructure:     true,
		RemoveNoise:          true,
		NormalizeStyles:      true,
		NormalizeAttributes:  true,
		DedupInheritedStyles: true,
		CleanupWhitespace:    true,
		BakeExcelStyles:      true,
	}
}

// PresetStructureOnly reconstructs headings and lists and strips vendor
// noise but leaves styling and attributes alone. Useful when a downstream
// sanitizer owns the attribute policy.
func PresetStructureOnly() *Config {
	return &Config{
		RebuildHeadings:  true,
		RebuildLists:     true,
		FlattenStructure: true,
		RemoveNoise:      true,
		BakeExcelStyles:  true,
	}
}

// Merge merges another config into this one: enabled stages from other
// are enabled in the result.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	merged := *c
	merged.RebuildHeadings = merged.RebuildHeadings || other.RebuildHeadings
	merged.RebuildLists = merged.RebuildLists || other.RebuildLists
	merged.FlattenStructure = merged.FlattenStructure || other.FlattenStructure
	merged.RemoveNoise = merged.RemoveNoise || other.RemoveNoise
	merged.NormalizeStyles = merged.NormalizeStyles || other.NormalizeStyles
	merged.NormalizeAttributes = merged.NormalizeAttributes || other.NormalizeAttributes
	merged.DedupInheritedStyles = merged.DedupInheritedStyles || other.DedupInheritedStyles
	merged.CleanupWhitespace = merged.CleanupWhitespace || other.CleanupWhitespace
	merged.BakeExcelStyles = merged.BakeExcelStyles || other.BakeExcelStyles
	merged.KeepLocalImages = merged.KeepLocalImages || other.KeepLocalImages
	return &merged
}
