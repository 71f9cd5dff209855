package msoffice

import "regexp"

// String-level preprocessing happens before any parse: conditional comments
// and XML processing instructions confuse the HTML5 parser, and the body
// extraction saves parsing a head full of Office metadata.
var (
	// Downlevel-hidden conditional blocks guarding fallback markup, e.g.
	// <!--[if !supportAnnotations]> ... <![endif]-->. Content dies with them.
	hiddenSupportRe = regexp.MustCompile(`(?is)<!--\[if\s+!support[^\]]*\]>.*?<!\[endif\]-->`)

	// Downlevel-revealed form of the same: delimiters are separate comments
	// with live markup between them. supportLists is exempted below because
	// its guarded run carries the bullet/number glyph the list pass still
	// needs to classify ordered vs unordered.
	revealedSupportRe = regexp.MustCompile(`(?is)<!--\[if\s+!support[^\]]*\]-->.*?<!--\[endif\]-->`)

	// Opening delimiter of a revealed supportLists block. Dropping just the
	// delimiter keeps the glyph run and leaves a dangling endif marker that
	// the generic delimiter strip below picks up.
	supportListsOpenRe = regexp.MustCompile(`(?i)<!--\[if\s+!supportLists\]-->`)

	// Remaining conditional delimiters (version gates like [if gte mso 9]).
	// Only the markers go; the guarded content is commonly real.
	condOpenRe = regexp.MustCompile(`(?i)<!(?:--)?\[if\s[^\]]*\](?:--)?>`)
	condEndRe  = regexp.MustCompile(`(?i)<!(?:--)?\[endif\](?:--)?>`)

	xmlDeclRe = regexp.MustCompile(`(?i)<\?xml[^>]*\?>`)

	bodyRe = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
)

// removeConditionalComments strips Office conditional-comment machinery from
// the raw string. Blocks guarding unsupported-feature fallbacks disappear
// with their content; every other conditional loses only its delimiters.
func removeConditionalComments(html string) string {
	html = supportListsOpenRe.ReplaceAllString(html, "")
	html = hiddenSupportRe.ReplaceAllString(html, "")
	html = revealedSupportRe.ReplaceAllString(html, "")
	html = condOpenRe.ReplaceAllString(html, "")
	html = condEndRe.ReplaceAllString(html, "")
	return xmlDeclRe.ReplaceAllString(html, "")
}

// extractBodyContent returns the fragment between the first body tag pair.
// Desktop Word table and fragment pastes often ship without a body wrapper;
// those come back unchanged.
func extractBodyContent(html string) string {
	if m := bodyRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return html
}
