package handler

import (
	"github.com/RCastroAB/autocomplete-python/internal/engine"
	"github.com/RCastroAB/autocomplete-python/internal/lookup"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

// serializeUsages answers the usages lookup. Lines stay 1-based on
// the wire, unlike definitions.
func (s *Server) serializeUsages(req *protocol.Request) (*protocol.Response, error) {
	usages, err := s.adapter.Usages(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	items := []protocol.UsageItem{}
	for _, u := range usages {
		items = append(items, protocol.UsageItem{
			Name:       u.Name,
			ModuleName: u.ModuleName,
			FileName:   u.ModulePath,
			Line:       u.Line,
			Column:     u.Column,
		})
	}
	return &protocol.Response{ID: req.ID, Results: items}, nil
}

// serializeMethods answers the methods lookup: in-scope completions
// whose lexical parent is a class, rendered with the instance name
// the adapter detected for the scope.
func (s *Server) serializeMethods(req *protocol.Request) (*protocol.Response, error) {
	comps, instance, err := s.adapter.Methods(req.Source, req.Path, req.Line, req.Column)
	if err != nil {
		return nil, err
	}

	items := []protocol.MethodItem{}
	for _, c := range comps {
		if c.ParentKind != engine.KindClass {
			continue
		}
		params := []string{}
		for _, p := range c.Params {
			if lookup.ArgumentLike(p.Description) {
				params = append(params, p.Description)
			}
		}
		items = append(items, protocol.MethodItem{
			Parent:     c.ParentName,
			Instance:   instance,
			Name:       c.Name,
			Params:     params,
			ModuleName: c.ModuleName,
			FileName:   c.ModulePath,
			Line:       c.Line,
			Column:     c.Column,
		})
	}
	return &protocol.Response{ID: req.ID, Results: items}, nil
}
