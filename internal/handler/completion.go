package handler

import (
	"fmt"
	"strings"

	"github.com/RCastroAB/autocomplete-python/internal/config"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

// serializeCompletions answers the completions lookup: signature
// parameters at the cursor double as argument-fillers and take
// precedence over general name completions with a colliding name.
func (s *Server) serializeCompletions(req *protocol.Request, sess *config.Session) (*protocol.Response, error) {
	args, err := s.adapter.SignatureArgs(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	items := []protocol.CompletionItem{}
	for _, arg := range args {
		// Fuzzy ranking is the engine matcher's job; only the plain
		// prefix filter runs here.
		if !sess.FuzzyMatcher && !strings.HasPrefix(strings.ToLower(arg.Name), strings.ToLower(req.Prefix)) {
			continue
		}
		item := protocol.CompletionItem{
			Type:       "property",
			RightLabel: renderFragments(arg.Sig.Fragments),
		}
		if arg.Value != "" {
			item.Snippet = fmt.Sprintf("%s=${1:%s}$0", arg.Name, arg.Value)
			item.Text = fmt.Sprintf("%s=%s", arg.Name, arg.Value)
		} else {
			item.Snippet = fmt.Sprintf("%s=$1$0", arg.Name)
			item.Text = arg.Name
			item.DisplayText = arg.Name
		}
		if sess.ShowDescriptions {
			item.Description = arg.Sig.Doc
		} else {
			item.Description = renderSignature(arg.Sig.Name, "", arg.Sig.Params)
		}
		items = append(items, item)
	}

	comps, err := s.adapter.Completions(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}
	for _, c := range comps {
		if collides(items, c.Name) {
			// An argument-flavored entry already covers this name.
			continue
		}
		item := protocol.CompletionItem{
			Text:       c.Name,
			Type:       definitionType(c),
			RightLabel: rightLabel(c.Kind, c.Fragments),
		}
		if sess.ShowDescriptions {
			item.Description = c.Doc
		} else {
			item.Description = renderSignature(c.Name, c.Kind, c.Params)
		}
		items = append(items, item)
	}

	return &protocol.Response{ID: req.ID, Results: items}, nil
}

// collides reports whether an existing entry's text, split at "=",
// equals the completion name.
func collides(items []protocol.CompletionItem, name string) bool {
	for _, item := range items {
		if text, _, _ := strings.Cut(item.Text, "="); text == name {
			return true
		}
	}
	return false
}

// serializeArguments answers the arguments lookup with one joined
// snippet built from the parameters not yet filled, in signature
// order, deduplicated by name. Defaulted parameters render only in
// full snippet mode; an exhausted signature yields an empty snippet.
func (s *Server) serializeArguments(req *protocol.Request, sess *config.Session) (*protocol.Response, error) {
	args, err := s.adapter.SignatureArgs(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	parts := []string{}
	i := 1
	for _, arg := range args {
		var part string
		switch {
		case arg.Value == "":
			part = fmt.Sprintf("${%d:%s}", i, arg.Name)
		case sess.UseSnippets == config.SnippetsAll:
			part = fmt.Sprintf("%s=${%d:%s}", arg.Name, i, arg.Value)
		default:
			continue
		}
		if !seen[arg.Name] {
			seen[arg.Name] = true
			parts = append(parts, part)
		}
		i++
	}

	snippet := ""
	if len(parts) > 0 {
		snippet = strings.Join(parts, ", ") + "$0"
	}
	return &protocol.Response{
		ID:        req.ID,
		Results:   []protocol.CompletionItem{},
		Arguments: &snippet,
	}, nil
}
