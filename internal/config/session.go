package config

import (
	"github.com/RCastroAB/autocomplete-python/internal/engine"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

// Snippet modes accepted in a request's useSnippets key.
const (
	SnippetsNone = "none"
	SnippetsAll  = "all"
)

// Session is one request's configuration snapshot. It is built fresh
// from the request's config map and discarded with the request;
// nothing survives except the engine settings Apply overwrites, which
// the next request's Apply overwrites again.
type Session struct {
	UseSnippets      string
	ShowDescriptions bool
	FuzzyMatcher     bool
	CaseInsensitive  bool
	ExtraPaths       []string
}

// NewSession builds a Session from a raw config map, filling defaults
// for missing keys: showDescriptions=true, fuzzyMatcher=false,
// caseInsensitiveCompletion=true, useSnippets unset.
func NewSession(raw protocol.ConfigMap) *Session {
	s := &Session{
		UseSnippets:      raw.UseSnippets,
		ShowDescriptions: true,
		FuzzyMatcher:     raw.FuzzyMatcher,
		CaseInsensitive:  true,
	}
	if raw.ShowDescriptions != nil {
		s.ShowDescriptions = *raw.ShowDescriptions
	}
	if raw.CaseInsensitiveCompletion != nil {
		s.CaseInsensitive = *raw.CaseInsensitiveCompletion
	}
	for _, p := range raw.ExtraPaths {
		if p != "" && !contains(s.ExtraPaths, p) {
			s.ExtraPaths = append(s.ExtraPaths, p)
		}
	}
	return s
}

// Apply re-asserts the process-wide engine settings for this request:
// the search path is rebuilt from scratch as root + baseline + the
// session's extra paths (order-preserving, no duplicates, root first
// when non-empty), and case sensitivity is set from the session.
// Engine settings are global, so every request must call Apply before
// querying.
func (s *Session) Apply(eng engine.Engine, baseline []string, root string) {
	paths := make([]string, 0, len(baseline)+len(s.ExtraPaths)+1)
	if root != "" {
		paths = append(paths, root)
	}
	for _, p := range baseline {
		if p != "" && !contains(paths, p) {
			paths = append(paths, p)
		}
	}
	for _, p := range s.ExtraPaths {
		if !contains(paths, p) {
			paths = append(paths, p)
		}
	}
	eng.SetSearchPaths(paths)
	eng.SetCaseInsensitive(s.CaseInsensitive)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
