// Package cleaner provides interfaces and implementations for cleaning
// pasted HTML content. Cleaners transform clipboard HTML into minimal
// markup suitable for storage in a rich-text field.
package cleaner

// Cleaner transforms HTML content into a cleaner form.
// The primary implementation normalizes Microsoft Office clipboard HTML;
// see the msoffice subpackage.
type Cleaner interface {
	// Clean transforms the input HTML into a cleaned fragment.
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
