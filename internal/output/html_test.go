package output

import (
	"bytes"
	"strings"
	"testing"
)

// --- HTMLWriter Tests ---

func TestNewWriter_HTML(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatHTML)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, ok := w.(*HTMLWriter); !ok {
		t.Errorf("expected *HTMLWriter, got %T", w)
	}
}

func TestHTMLWriter_Write_Compact(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewHTMLWriter(buf, false)

	fragment := "<h1>Title</h1><p>Body</p>"
	if err := w.Write(fragment); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := buf.String(); got != fragment+"\n" {
		t.Errorf("expected fragment unchanged, got %q", got)
	}
}

func TestHTMLWriter_Write_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewHTMLWriter(buf, true)

	if err := w.Write("<ul><li>one</li><li>two</li></ul>"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "\n") {
		t.Error("expected pretty output to span multiple lines")
	}
	if !strings.Contains(output, "<li>") || !strings.Contains(output, "two") {
		t.Errorf("expected content preserved, got %q", output)
	}
}

func TestHTMLWriter_WriteAll(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewHTMLWriter(buf, false)

	if err := w.WriteAll([]any{"<p>a</p>", "<p>b</p>"}); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestHTMLWriter_NonStringValue(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewHTMLWriter(buf, false)

	if err := w.Write(42); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := buf.String(); got != "42\n" {
		t.Errorf("expected formatted value, got %q", got)
	}
}
