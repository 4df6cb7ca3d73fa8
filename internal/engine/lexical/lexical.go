// Package lexical implements a fallback analysis engine with no
// Python semantics: it scans the buffer for identifiers and answers
// lookups from a prefix index. It keeps the bridge usable end to end
// when no richer oracle is wired in.
package lexical

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/RCastroAB/autocomplete-python/internal/engine"
)

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

var keywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else",
	"except", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
	"return", "try", "while", "with", "yield",
}

// Engine answers lookups from a lexical scan of the buffer. Like any
// engine, its search path and case sensitivity are process-wide
// settings re-asserted per request.
type Engine struct {
	searchPaths     []string
	caseInsensitive bool
}

var _ engine.Engine = (*Engine)(nil)

func New() *Engine {
	return &Engine{caseInsensitive: true}
}

type occurrence struct {
	name string
	line int
	col  int
}

func scan(source string) []occurrence {
	var occs []occurrence
	for i, ln := range strings.Split(source, "\n") {
		for _, loc := range identRe.FindAllStringIndex(ln, -1) {
			occs = append(occs, occurrence{name: ln[loc[0]:loc[1]], line: i + 1, col: loc[0]})
		}
	}
	return occs
}

// ResolveAtCursor returns every distinct identifier in the buffer as
// a value candidate, in index order, followed by the Python keywords.
// Prefix narrowing is left to the client's matcher, as the serializer
// only filters argument candidates.
func (e *Engine) ResolveAtCursor(source, path string, line, column int) ([]engine.Candidate, error) {
	source, err := e.load(source, path)
	if err != nil {
		return nil, err
	}

	trie := patricia.NewTrie()
	for _, o := range scan(source) {
		key := patricia.Prefix(e.fold(o.name))
		if trie.Get(key) == nil {
			trie.Insert(key, o)
		}
	}

	var out []engine.Candidate
	_ = trie.Visit(func(_ patricia.Prefix, item patricia.Item) error {
		o := item.(occurrence)
		out = append(out, e.candidate(o, path))
		return nil
	})
	for _, k := range keywords {
		out = append(out, engine.Candidate{Name: k, Kind: engine.KindKeyword})
	}
	return out, nil
}

// SignaturesAtCursor always answers empty: a lexical scan has no call
// model.
func (e *Engine) SignaturesAtCursor(source, path string, line, column int) ([]engine.Signature, error) {
	return nil, nil
}

// AssignmentTargetsAtCursor treats the first occurrence of the word
// at the cursor as its definition site.
func (e *Engine) AssignmentTargetsAtCursor(source, path string, line, column int) ([]engine.Candidate, error) {
	source, err := e.load(source, path)
	if err != nil {
		return nil, err
	}
	occs := scan(source)
	word := wordAt(occs, line, column)
	if word == "" {
		return nil, nil
	}
	for _, o := range occs {
		if o.name == word {
			return []engine.Candidate{e.candidate(o, path)}, nil
		}
	}
	return nil, nil
}

// UsagesOf returns every occurrence of the word at the cursor.
func (e *Engine) UsagesOf(source, path string, line, column int) ([]engine.Candidate, error) {
	source, err := e.load(source, path)
	if err != nil {
		return nil, err
	}
	occs := scan(source)
	word := wordAt(occs, line, column)
	if word == "" {
		return nil, nil
	}

	var out []engine.Candidate
	for _, o := range occs {
		if e.fold(o.name) == e.fold(word) {
			out = append(out, e.candidate(o, path))
		}
	}
	return out, nil
}

func (e *Engine) SetSearchPaths(paths []string) {
	e.searchPaths = paths
}

func (e *Engine) SetCaseInsensitive(v bool) {
	e.caseInsensitive = v
}

func (e *Engine) candidate(o occurrence, path string) engine.Candidate {
	return engine.Candidate{
		Name:       o.name,
		Kind:       engine.KindStatement,
		ModuleName: moduleName(path),
		ModulePath: path,
		Line:       o.line,
		Column:     o.col,
	}
}

func (e *Engine) fold(s string) string {
	if e.caseInsensitive {
		return strings.ToLower(s)
	}
	return s
}

// load returns source as-is, or the module at path when source is
// empty (the import-chain resolution contract).
func (e *Engine) load(source, path string) (string, error) {
	if source != "" || path == "" {
		return source, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot load module %s: %w", path, err)
	}
	return string(b), nil
}

// wordAt finds the identifier the cursor touches: the cursor sits
// inside it or immediately after its last character. Line is 1-based,
// column 0-based.
func wordAt(occs []occurrence, line, column int) string {
	for _, o := range occs {
		if o.line == line && o.col <= column && column <= o.col+len(o.name) {
			return o.name
		}
	}
	return ""
}

func moduleName(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(path), ".py")
}
