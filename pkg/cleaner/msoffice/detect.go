package msoffice

import "regexp"

// Detection runs over the raw string, not a parsed tree: the markers often
// live in the head or in markup fragments that never survive parsing, and
// Word routinely emits HTML that parsers mangle before we get to look at it.
var wordMarkers = []*regexp.Regexp{
	// Office XML namespace declaration on the html element.
	regexp.MustCompile(`(?i)xmlns:o="?urn:schemas-microsoft-com`),
	// ProgId meta emitted by desktop Word.
	regexp.MustCompile(`(?i)<meta[^>]*content=["']?Word\.Document`),
	// Mso* paragraph/character classes (MsoNormal, MsoListParagraph, ...).
	regexp.MustCompile(`class=["']?Mso[A-Z]`),
	// Empty paragraph markers from the Office namespace.
	regexp.MustCompile(`(?i)<o:p>`),
	// Desktop list level declarations.
	regexp.MustCompile(`(?i)mso-list:`),
	// Word Online per-item list wrappers.
	regexp.MustCompile(`class=["'][^"']*ListContainerWrapper`),
	regexp.MustCompile(`(?i)data-listid=`),
	// Word-only default color keyword.
	regexp.MustCompile(`(?i)color:\s*windowtext`),
	// Word Online underlines collaboration ranges this way.
	regexp.MustCompile(`(?i)border-bottom:\s*1px solid transparent`),
}

var excelMarkers = []*regexp.Regexp{
	// ProgId meta emitted by desktop Excel.
	regexp.MustCompile(`(?i)<meta[^>]*content=["']?Excel\.Sheet`),
	// Cell formatting property only Excel writes.
	regexp.MustCompile(`(?i)mso-displayed-decimal-separator`),
	// Generator meta naming Excel (web export path).
	regexp.MustCompile(`(?i)<meta[^>]*content=["'][^"'>]*Microsoft Excel`),
}

// IsWordContent reports whether the raw HTML string was produced by a
// Microsoft Word clipboard provider (desktop or web). Excel content counts
// as Word content for cleaning purposes.
func IsWordContent(html string) bool {
	for _, re := range wordMarkers {
		if re.MatchString(html) {
			return true
		}
	}
	return IsExcelContent(html)
}

// IsExcelContent reports whether the raw HTML string was produced by
// Microsoft Excel specifically.
func IsExcelContent(html string) bool {
	for _, re := range excelMarkers {
		if re.MatchString(html) {
			return true
		}
	}
	return false
}
