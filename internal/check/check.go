// Package check provides environment diagnostics (the check command) and
// pre-run document validation.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/variant"
)

// Sentinel errors returned by CheckDocument.
var (
	ErrDocumentMissing = errors.New("document file not found")
	ErrNoComponentSets = errors.New("page has no component sets")
	ErrEmptySets       = errors.New("all component sets are empty")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive check flow: document readability, page and
// component-set census, name pattern token coverage, and state file
// writability. Informational only, it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Environment Check ===")

	doc := checkDocument(cfg, log)
	if doc != nil {
		checkPattern(cfg, doc, log)
	}
	checkStateFile(cfg, log)
}

// CheckDocument validates that the document loads and yields something to
// scan. Unlike RunCheck it returns the first failure so the pipeline can
// refuse to run.
func CheckDocument(cfg *config.Config) (*document.Document, error) {
	if _, err := os.Stat(cfg.DocumentPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentMissing, cfg.DocumentPath)
	}
	doc, err := document.Load(cfg.DocumentPath)
	if err != nil {
		return nil, err
	}
	page, err := doc.Page(cfg.PageName)
	if err != nil {
		return nil, err
	}
	sets := page.ChildrenOfType(document.TypeComponentSet)
	if len(sets) == 0 {
		return nil, ErrNoComponentSets
	}
	members := 0
	for _, s := range sets {
		members += len(s.ChildrenOfType(document.TypeComponent))
	}
	if members == 0 {
		return nil, ErrEmptySets
	}
	return doc, nil
}

func checkDocument(cfg *config.Config, log Logger) *document.Document {
	if cfg.DocumentPath == "" {
		log.Warn("no document path configured")
		return nil
	}
	doc, err := CheckDocument(cfg)
	if err != nil {
		log.Error("document: %v", err)
		return nil
	}
	page, _ := doc.Page(cfg.PageName)
	sets := page.ChildrenOfType(document.TypeComponentSet)
	members := 0
	for _, s := range sets {
		n := len(s.ChildrenOfType(document.TypeComponent))
		members += n
		log.Info("  %s: %d members", s.Name, n)
	}
	log.Success("document %q: %d component sets, %d members on page %q",
		doc.Name, len(sets), members, page.Name)
	return doc
}

// checkPattern reports which pattern tokens resolve against the property
// keys actually present in the document.
func checkPattern(cfg *config.Config, doc *document.Document, log Logger) {
	pattern := variant.Pattern(cfg.Pattern)
	if pattern == "" {
		pattern = variant.DefaultPattern
	}
	tokens := pattern.Tokens()
	if len(tokens) == 0 {
		log.Warn("pattern %q has no tokens; every instance gets the same name", pattern)
		return
	}

	kw := variant.DefaultKeywords
	if len(cfg.Keywords) > 0 {
		kw = variant.Keywords(cfg.Keywords)
	}
	page, _ := doc.Page(cfg.PageName)
	known := map[string]bool{
		variant.TokenSetName:     true,
		variant.TokenAllVariants: true,
	}
	for _, set := range page.ChildrenOfType(document.TypeComponentSet) {
		for _, member := range set.ChildrenOfType(document.TypeComponent) {
			raw := make([]variant.RawProperty, 0, len(member.VariantProperties))
			for _, p := range member.VariantProperties {
				raw = append(raw, variant.RawProperty{Key: p.Key, Value: p.Value})
			}
			for _, prop := range variant.ExtractProperties(raw, member.Name, kw) {
				known[prop.Key] = true
			}
		}
	}

	var missing []string
	for _, tok := range tokens {
		if !known[tok] {
			missing = append(missing, tok)
		}
	}
	sort.Strings(missing)
	if len(missing) > 0 {
		log.Warn("pattern tokens with no matching property: %v (left verbatim in names)", missing)
	} else {
		log.Success("pattern %q: all %d tokens resolve", pattern, len(tokens))
	}
}

// checkStateFile verifies the state file location is writable.
func checkStateFile(cfg *config.Config, log Logger) {
	path := cfg.StateFile
	if path == "" {
		log.Info("state file: using default location")
		return
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("state directory %s: %v", dir, err)
		return
	}
	probe := filepath.Join(dir, ".instancer-write-test")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		log.Error("state directory not writable: %v", err)
		return
	}
	os.Remove(probe)
	log.Success("state file: %s", path)
}
