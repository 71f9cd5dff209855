package config

import (
	"strings"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{
			name: "valid html format",
			s:    Settings{Format: "html"},
		},
		{
			name: "valid yaml format with preset",
			s:    Settings{Format: "yaml", Preset: "structure-only"},
		},
		{
			name:    "unknown format",
			s:       Settings{Format: "xml"},
			wantErr: "format must be one of",
		},
		{
			name:    "unknown preset",
			s:       Settings{Format: "json", Preset: "everything"},
			wantErr: "preset must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCleanerConfigDefaults(t *testing.T) {
	s := Settings{Format: "html"}
	cfg := s.CleanerConfig()

	if !cfg.RebuildHeadings || !cfg.NormalizeStyles || !cfg.BakeExcelStyles {
		t.Error("expected full pipeline from the default preset")
	}
	if cfg.KeepLocalImages {
		t.Error("expected local images dropped by default")
	}
}

func TestCleanerConfigStructureOnlyPreset(t *testing.T) {
	s := Settings{Format: "html", Preset: "structure-only"}
	cfg := s.CleanerConfig()

	if !cfg.RebuildHeadings || !cfg.RebuildLists {
		t.Error("expected structural stages enabled")
	}
	if cfg.NormalizeStyles || cfg.NormalizeAttributes {
		t.Error("expected style stages disabled")
	}
}

func TestCleanerConfigStageOverrides(t *testing.T) {
	s := Settings{
		Format: "html",
		Stages: StageToggles{
			Headings: boolPtr(false),
			Styles:   boolPtr(false),
		},
	}
	cfg := s.CleanerConfig()

	if cfg.RebuildHeadings {
		t.Error("expected headings stage disabled by override")
	}
	if cfg.NormalizeStyles {
		t.Error("expected styles stage disabled by override")
	}
	if !cfg.RebuildLists {
		t.Error("expected untouched stages to keep the preset value")
	}
}

func TestCleanerConfigKeepLocalImages(t *testing.T) {
	s := Settings{Format: "html", KeepLocalImages: true}
	if !s.CleanerConfig().KeepLocalImages {
		t.Error("expected keep_local_images to pass through")
	}
}
