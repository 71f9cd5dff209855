// Package msoffice rewrites the HTML that Microsoft Word and Excel
// clipboard providers emit into minimal, semantically correct markup.
// Headings, nested lists and basic character/cell formatting survive;
// namespaced tags, conditional comments, layout wrappers, default-valued
// styles and editor-private attributes do not.
//
// The pipeline is a fixed sequence of tree rewrites over one private
// document per invocation; stage order matters because later passes rely on
// the structure earlier ones establish. Clean never fails: input the
// pipeline cannot process comes back unmodified with a warning attached.
package msoffice

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Cleaner normalizes Word/Excel clipboard HTML.
// It implements the cleaner.Cleaner interface.
type Cleaner struct {
	config *Config
	stats  *Stats
}

// New creates a Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{config: config}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "msoffice"
}

// Clean rewrites Word/Excel clipboard HTML with the default pipeline.
func Clean(html string) string {
	result, _ := New(nil).Clean(html)
	return result
}

// Clean transforms the fragment according to the configuration. The error
// is always nil; unprocessable input degrades to the original string.
func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanWithStats(html).Content, nil
}

// stage binds a pipeline step to its config toggle. The slice below is the
// authoritative execution order: reconstruction first (it reads markers the
// cleanup passes destroy), then noise and style reduction, then the final
// whitespace sweep over whatever is left.
type stage struct {
	name    string
	enabled func(*Config) bool
	run     func(*Cleaner, *goquery.Document, *Result)
}

var stages = []stage{
	{"headings", func(cfg *Config) bool { return cfg.RebuildHeadings }, (*Cleaner).reconstructHeadings},
	{"lists-online", func(cfg *Config) bool { return cfg.RebuildLists }, (*Cleaner).rebuildOnlineLists},
	{"lists-desktop", func(cfg *Config) bool { return cfg.RebuildLists }, (*Cleaner).rebuildDesktopLists},
	{"flatten", func(cfg *Config) bool { return cfg.FlattenStructure }, (*Cleaner).flattenStructure},
	{"noise", func(cfg *Config) bool { return cfg.RemoveNoise }, (*Cleaner).removeNoise},
	{"styles", func(cfg *Config) bool { return cfg.NormalizeStyles }, (*Cleaner).normalizeStyles},
	{"attributes", func(cfg *Config) bool { return cfg.NormalizeAttributes }, (*Cleaner).normalizeAttributes},
	{"heading-spans", func(cfg *Config) bool { return cfg.CleanupWhitespace }, (*Cleaner).stripHeadingSpans},
	{"style-dedup", func(cfg *Config) bool { return cfg.DedupInheritedStyles }, (*Cleaner).dedupInheritedStyles},
	{"whitespace", func(cfg *Config) bool { return cfg.CleanupWhitespace }, (*Cleaner).cleanupWhitespace},
}

// CleanWithStats performs cleaning and returns detailed stats.
func (c *Cleaner) CleanWithStats(raw string) *Result {
	startTime := time.Now()
	result := &Result{Stats: NewStats()}
	result.Stats.InputBytes = len(raw)
	result.Word = IsWordContent(raw)
	result.Excel = IsExcelContent(raw)

	// String-level preprocessing. Conditional comments and XML declarations
	// go before any parse; Excel stylesheets bake in before the head (and
	// the stylesheet with it) is cut away.
	pre := removeConditionalComments(raw)
	if result.Excel && c.config.BakeExcelStyles {
		pre = c.bakeExcelStyles(pre, result)
	}
	pre = extractBodyContent(pre)

	parseStart := time.Now()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pre))
	result.Stats.ParseDuration = time.Since(parseStart)
	if err != nil {
		result.Content = raw
		result.AddWarning("parse", "HTML parse failed, returning original", err.Error())
		result.Stats.OutputBytes = len(raw)
		result.Stats.TotalDuration = time.Since(startTime)
		c.stats = result.Stats
		return result
	}
	if bodyNode(doc) == nil {
		result.Content = raw
		result.AddWarning("parse", "parse wrapper missing, returning original", "")
		result.Stats.OutputBytes = len(raw)
		result.Stats.TotalDuration = time.Since(startTime)
		c.stats = result.Stats
		return result
	}

	transformStart := time.Now()
	for _, s := range stages {
		if s.enabled(c.config) {
			s.run(c, doc, result)
		}
	}
	result.Stats.TransformDuration = time.Since(transformStart)

	outputStart := time.Now()
	out, err := doc.Find("body").Html()
	result.Stats.OutputDuration = time.Since(outputStart)
	if err != nil {
		result.Content = raw
		result.AddWarning("output", "serialization failed, returning original", err.Error())
		result.Stats.OutputBytes = len(raw)
	} else {
		result.Content = strings.TrimSpace(out)
		result.Stats.OutputBytes = len(result.Content)
	}

	result.Stats.TotalDuration = time.Since(startTime)
	c.stats = result.Stats
	return result
}

// Stats returns the stats from the last Clean operation.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}

// bodyNode returns the body element of the synthetic parse wrapper, or nil
// when the parser could not construct one.
func bodyNode(doc *goquery.Document) *html.Node {
	sel := doc.Find("body")
	if len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}
