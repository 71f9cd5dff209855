package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yosssi/gohtml"
)

// HTMLWriter writes cleaned fragments as raw HTML. Non-string values fall
// back to their default formatting so mixed pipelines still produce output.
type HTMLWriter struct {
	w      *bufio.Writer
	pretty bool
}

// NewHTMLWriter creates an HTML writer. With pretty enabled the fragment is
// re-indented for human inspection; the compact form is what callers should
// store.
func NewHTMLWriter(w io.Writer, pretty bool) *HTMLWriter {
	return &HTMLWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
	}
}

// Write outputs a single fragment followed by a newline.
func (w *HTMLWriter) Write(data any) error {
	s, ok := data.(string)
	if !ok {
		s = fmt.Sprint(data)
	}
	if w.pretty {
		s = gohtml.Format(s)
	}
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	_, err := w.w.WriteString("\n")
	return err
}

// WriteAll outputs multiple fragments.
func (w *HTMLWriter) WriteAll(data []any) error {
	for _, d := range data {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// Flush ensures all data is written.
func (w *HTMLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *HTMLWriter) Close() error {
	return w.Flush()
}
