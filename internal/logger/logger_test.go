package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

// --- Init Tests ---

func TestInit_DefaultLevel_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	// Info should be logged
	Info("cleaning clipboard fragment")
	if !strings.Contains(buf.String(), "cleaning clipboard fragment") {
		t.Error("Info message should be logged at default level")
	}

	buf.Reset()

	// Debug should NOT be logged at default level
	Debug("stage trace")
	if strings.Contains(buf.String(), "stage trace") {
		t.Error("Debug message should not be logged at default level")
	}
}

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	// Debug should be logged when Debug=true
	Debug("rebuilt nested list")
	if !strings.Contains(buf.String(), "rebuilt nested list") {
		t.Error("Debug message should be logged when Debug=true")
	}
}

func TestInit_QuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer resetLogger()

	// Info should NOT be logged when Quiet=true
	Info("detected word content")
	if strings.Contains(buf.String(), "detected word content") {
		t.Error("Info message should not be logged when Quiet=true")
	}

	// Warn should NOT be logged when Quiet=true
	Warn("stylesheet parse skipped")
	if strings.Contains(buf.String(), "stylesheet parse skipped") {
		t.Error("Warn message should not be logged when Quiet=true")
	}

	// Error should be logged when Quiet=true
	Error("failed to read input")
	if !strings.Contains(buf.String(), "failed to read input") {
		t.Error("Error message should be logged when Quiet=true")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("cleaned fragment")

	output := buf.String()

	// JSON output should contain JSON structure
	if !strings.Contains(output, "{") || !strings.Contains(output, "}") {
		t.Error("JSON format should produce JSON output")
	}

	// Should contain the message
	if !strings.Contains(output, "cleaned fragment") {
		t.Error("JSON output should contain the message")
	}

	// Should contain level indicator
	if !strings.Contains(output, "level") {
		t.Error("JSON output should contain level field")
	}
}

func TestInit_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: false, Output: buf})
	defer resetLogger()

	Info("cleaned fragment")

	output := buf.String()

	// Text output should contain the message
	if !strings.Contains(output, "cleaned fragment") {
		t.Error("Text output should contain the message")
	}

	// Text output should contain level (INFO)
	if !strings.Contains(strings.ToUpper(output), "INFO") {
		t.Error("Text output should contain level INFO")
	}
}

func TestInit_CustomOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("writing cleaned output")

	if buf.Len() == 0 {
		t.Error("expected output to custom writer")
	}

	if !strings.Contains(buf.String(), "writing cleaned output") {
		t.Error("expected message in custom output")
	}
}

// --- Log Function Tests ---

func TestDebug_NotLogged_AtInfoLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Debug("per-stage timing")

	if strings.Contains(buf.String(), "per-stage timing") {
		t.Error("Debug should not be logged at Info level")
	}
}

func TestDebug_Logged_AtDebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	Debug("per-stage timing")

	if !strings.Contains(buf.String(), "per-stage timing") {
		t.Error("Debug should be logged at Debug level")
	}
}

func TestInfo_LoggedAtInfoLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("no office markers found")

	if !strings.Contains(buf.String(), "no office markers found") {
		t.Error("Info should be logged at Info level")
	}
}

func TestWarn_LoggedAtInfoLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Warn("parse degraded, returning input unchanged")

	if !strings.Contains(buf.String(), "parse degraded") {
		t.Error("Warn should be logged at Info level")
	}
}

func TestError_LoggedAtQuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer resetLogger()

	Error("cannot open output file")

	if !strings.Contains(buf.String(), "cannot open output file") {
		t.Error("Error should be logged even at Quiet level")
	}
}

func TestError_LoggedAtInfoLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Error("cannot open output file")

	if !strings.Contains(buf.String(), "cannot open output file") {
		t.Error("Error should be logged at Info level")
	}
}

// --- With Tests ---

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	logger := With("source", "excel")
	if logger == nil {
		t.Fatal("With() returned nil")
	}

	logger.Info("baking stylesheet rules")

	output := buf.String()
	if !strings.Contains(output, "baking stylesheet rules") {
		t.Error("expected message in output")
	}

	if !strings.Contains(output, "source") || !strings.Contains(output, "excel") {
		t.Error("expected attributes in output")
	}
}

// --- Context Tests ---

func TestDebugContext(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	ctx := context.Background()
	DebugContext(ctx, "flattening containers")

	if !strings.Contains(buf.String(), "flattening containers") {
		t.Error("DebugContext should log message")
	}
}

func TestInfoContext(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	ctx := context.Background()
	InfoContext(ctx, "clean finished")

	if !strings.Contains(buf.String(), "clean finished") {
		t.Error("InfoContext should log message")
	}
}

func TestErrorContext(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	ctx := context.Background()
	ErrorContext(ctx, "invalid configuration")

	if !strings.Contains(buf.String(), "invalid configuration") {
		t.Error("ErrorContext should log message")
	}
}

// --- Structured Arguments Tests ---

func TestInfo_WithStructuredArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("cleaned fragment", "list_items", 7, "source", "word-desktop")

	output := buf.String()
	if !strings.Contains(output, "cleaned fragment") {
		t.Error("expected message in output")
	}

	if !strings.Contains(output, "list_items") {
		t.Error("expected 'list_items' key in output")
	}

	if !strings.Contains(output, "7") {
		t.Error("expected '7' value in output")
	}

	if !strings.Contains(output, "source") {
		t.Error("expected 'source' key in output")
	}

	if !strings.Contains(output, "word-desktop") {
		t.Error("expected 'word-desktop' value in output")
	}
}

// --- Level Priority Tests ---

func TestQuiet_OverridesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	// Both Debug and Quiet are set - Quiet should take precedence
	Init(Options{Debug: true, Quiet: true, Output: buf})
	defer resetLogger()

	Debug("stage trace")
	Info("detected word content")
	Error("failed to read input")

	output := buf.String()

	// Only Error should be logged
	if strings.Contains(output, "stage trace") {
		t.Error("Debug should not be logged when Quiet=true")
	}

	if strings.Contains(output, "detected word content") {
		t.Error("Info should not be logged when Quiet=true")
	}

	if !strings.Contains(output, "failed to read input") {
		t.Error("Error should be logged when Quiet=true")
	}
}
