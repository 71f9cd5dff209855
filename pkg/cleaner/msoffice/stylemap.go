package msoffice

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// StyleMap is an ordered property/value mapping parsed from a style
// attribute. Property names are lower-cased and values trimmed; declaration
// order (including duplicates) is preserved so that serialization order can
// decide conflicts the way inline CSS does.
type StyleMap struct {
	decls []Declaration
}

// ParseStyle parses a semicolon-delimited declaration list. Word emits
// style attributes that strict CSS tokenizers reject (stray semicolons,
// unquoted font lists, vendor junk), so a naive splitter backs up the real
// parser.
func ParseStyle(style string) StyleMap {
	style = strings.TrimSpace(style)
	if style == "" {
		return StyleMap{}
	}

	// douceur silently drops the value of a final declaration that has no
	// terminating semicolon, so make the terminator explicit before parsing.
	parseable := style
	if !strings.HasSuffix(parseable, ";") {
		parseable += ";"
	}

	var m StyleMap
	if decls, err := parser.ParseDeclarations(parseable); err == nil {
		for _, d := range decls {
			prop := strings.ToLower(strings.TrimSpace(d.Property))
			val := strings.TrimSpace(d.Value)
			if prop == "" || val == "" {
				continue
			}
			if d.Important {
				val += " !important"
			}
			m.decls = append(m.decls, Declaration{Property: prop, Value: val})
		}
		return m
	}

	for _, part := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		m.decls = append(m.decls, Declaration{Property: prop, Value: val})
	}
	return m
}

// newStyleMap builds a StyleMap from declarations verbatim, keeping order
// and duplicates.
func newStyleMap(decls ...Declaration) StyleMap {
	m := StyleMap{decls: make([]Declaration, len(decls))}
	copy(m.decls, decls)
	return m
}

// Len returns the number of declarations.
func (m StyleMap) Len() int { return len(m.decls) }

// Get returns the value of the last declaration for prop, if any. The last
// one wins, matching how browsers resolve duplicated inline declarations.
func (m StyleMap) Get(prop string) (string, bool) {
	prop = strings.ToLower(prop)
	for i := len(m.decls) - 1; i >= 0; i-- {
		if m.decls[i].Property == prop {
			return m.decls[i].Value, true
		}
	}
	return "", false
}

// Has reports whether prop is declared.
func (m StyleMap) Has(prop string) bool {
	_, ok := m.Get(prop)
	return ok
}

// Set replaces the first declaration for prop in place, or appends one.
func (m *StyleMap) Set(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)
	for i := range m.decls {
		if m.decls[i].Property == prop {
			m.decls[i].Value = value
			return
		}
	}
	m.decls = append(m.decls, Declaration{Property: prop, Value: value})
}

// Remove deletes every declaration for prop.
func (m *StyleMap) Remove(prop string) {
	prop = strings.ToLower(prop)
	kept := m.decls[:0]
	for _, d := range m.decls {
		if d.Property != prop {
			kept = append(kept, d)
		}
	}
	m.decls = kept
}

// Decls returns a copy of the declarations in order.
func (m StyleMap) Decls() []Declaration {
	out := make([]Declaration, len(m.decls))
	copy(out, m.decls)
	return out
}

// String serializes the map as "prop: value; prop: value". Parsing the
// result yields an equal map.
func (m StyleMap) String() string {
	if len(m.decls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.decls))
	for _, d := range m.decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
