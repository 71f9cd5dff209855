// Package config loads and validates CLI settings from flags, environment
// and the optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/wordwash/pkg/cleaner/msoffice"
)

// Settings holds the resolved configuration for a wordwash run. Values come
// from viper, so flag, environment and file sources all funnel through the
// same keys.
type Settings struct {
	// Output
	Format string `mapstructure:"format" validate:"oneof=html json jsonl yaml"`
	Pretty bool   `mapstructure:"pretty"`
	Output string `mapstructure:"output"`

	// Pipeline
	Preset          string `mapstructure:"preset" validate:"omitempty,oneof=default structure-only"`
	Force           bool   `mapstructure:"force"`
	KeepLocalImages bool   `mapstructure:"keep_local_images"`

	// Stage overrides; nil means the preset decides.
	Stages StageToggles `mapstructure:"stages"`

	// Logging
	Debug bool `mapstructure:"debug"`
	Quiet bool `mapstructure:"quiet"`
}

// StageToggles optionally disables individual pipeline stages from the
// config file.
type StageToggles struct {
	Headings   *bool `mapstructure:"headings"`
	Lists      *bool `mapstructure:"lists"`
	Flatten    *bool `mapstructure:"flatten"`
	Noise      *bool `mapstructure:"noise"`
	Styles     *bool `mapstructure:"styles"`
	Attributes *bool `mapstructure:"attributes"`
	Dedup      *bool `mapstructure:"dedup"`
	Whitespace *bool `mapstructure:"whitespace"`
	ExcelBake  *bool `mapstructure:"excel_bake"`
}

// Load unmarshals the current viper state into Settings and validates it.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings against their constraints.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q",
			strings.ToLower(e.Field()), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", strings.ToLower(e.Field()), e.Tag())
	}
}

// CleanerConfig resolves the settings into a pipeline configuration: the
// preset supplies the baseline and explicit stage toggles override it.
func (s *Settings) CleanerConfig() *msoffice.Config {
	var cfg *msoffice.Config
	switch s.Preset {
	case "structure-only":
		cfg = msoffice.PresetStructureOnly()
	default:
		cfg = msoffice.DefaultConfig()
	}
	cfg.KeepLocalImages = s.KeepLocalImages

	apply := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&cfg.RebuildHeadings, s.Stages.Headings)
	apply(&cfg.RebuildLists, s.Stages.Lists)
	apply(&cfg.FlattenStructure, s.Stages.Flatten)
	apply(&cfg.RemoveNoise, s.Stages.Noise)
	apply(&cfg.NormalizeStyles, s.Stages.Styles)
	apply(&cfg.NormalizeAttributes, s.Stages.Attributes)
	apply(&cfg.DedupInheritedStyles, s.Stages.Dedup)
	apply(&cfg.CleanupWhitespace, s.Stages.Whitespace)
	apply(&cfg.BakeExcelStyles, s.Stages.ExcelBake)

	return cfg
}
