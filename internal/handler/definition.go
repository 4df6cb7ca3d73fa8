package handler

import (
	"strings"

	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

// serializeDefinitions answers the definitions lookup. Output lines
// are 0-based (native line minus one); see protocol.DefinitionItem.
func (s *Server) serializeDefinitions(req *protocol.Request) (*protocol.Response, error) {
	defs, err := s.adapter.Definitions(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	items := []protocol.DefinitionItem{}
	for _, d := range defs {
		items = append(items, protocol.DefinitionItem{
			Text:     d.Name,
			Type:     definitionType(d),
			FileName: d.ModulePath,
			Line:     d.Line - 1,
			Column:   d.Column,
		})
	}
	return &protocol.Response{ID: req.ID, Results: items}, nil
}

// serializeTooltip answers the tooltip lookup with at most one entry:
// the first resolved candidate, described by its trimmed doc string
// or, when that is empty, its right-hand annotation.
func (s *Server) serializeTooltip(req *protocol.Request) (*protocol.Response, error) {
	defs, err := s.adapter.Definitions(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	items := []protocol.TooltipItem{}
	for _, d := range defs {
		description := strings.TrimSpace(d.Doc)
		if description == "" {
			description = rightLabel(d.Kind, d.Fragments)
		}
		items = append(items, protocol.TooltipItem{
			Text:        d.Name,
			Type:        definitionType(d),
			FileName:    d.ModulePath,
			Description: description,
			Line:        d.Line - 1,
			Column:      d.Column,
		})
		break
	}
	return &protocol.Response{ID: req.ID, Results: items}, nil
}
