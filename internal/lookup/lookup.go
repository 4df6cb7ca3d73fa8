// Package lookup translates a decoded request into analysis-engine
// queries and normalizes the raw engine output for the serializers.
package lookup

import (
	"errors"
	"regexp"
	"strings"

	"github.com/RCastroAB/autocomplete-python/internal/engine"
)

var (
	wordRe     = regexp.MustCompile(`^\w`)
	argumentRe = regexp.MustCompile(`^[a-zA-Z0-9_=\*"']+`)
)

// SigParam is one usable parameter extracted from a call signature at
// the cursor. Value is empty for parameters without a default.
type SigParam struct {
	Sig   *engine.Signature
	Name  string
	Value string
}

// Adapter drives an Engine for the bridge's lookup kinds.
type Adapter struct {
	engine engine.Engine
}

func NewAdapter(eng engine.Engine) *Adapter {
	return &Adapter{engine: eng}
}

// SignatureArgs flattens the signatures visible at the cursor into
// fillable parameters. Unnamed parameters, a leading self, names not
// starting with a word character and star-parameters are skipped. A
// description of the exact form "name=value" splits into name and
// value; anything else is taken whole as the name.
func (a *Adapter) SignatureArgs(source, path string, line, column int) ([]SigParam, error) {
	sigs, err := a.engine.SignaturesAtCursor(source, path, line, column)
	if err != nil {
		if errors.Is(err, engine.ErrStaleState) {
			return nil, nil
		}
		return nil, err
	}

	var args []SigParam
	for i := range sigs {
		sig := &sigs[i]
		for pos, param := range sig.Params {
			if param.Name == "" {
				continue
			}
			if param.Name == "self" && pos == 0 {
				continue
			}
			if !wordRe.MatchString(param.Name) {
				continue
			}
			desc := strings.ReplaceAll(param.Description, "param ", "")
			name, value := desc, ""
			if parts := strings.Split(desc, "="); len(parts) == 2 {
				name, value = parts[0], parts[1]
			}
			if strings.HasPrefix(name, "*") {
				continue
			}
			args = append(args, SigParam{Sig: sig, Name: name, Value: value})
		}
	}
	return args, nil
}

// Completions returns general name completions at the cursor. A stale
// engine state counts as no candidates.
func (a *Adapter) Completions(source, path string, line, column int) ([]engine.Candidate, error) {
	comps, err := a.engine.ResolveAtCursor(source, path, line, column)
	if err != nil {
		if errors.Is(err, engine.ErrStaleState) {
			return nil, nil
		}
		return nil, err
	}
	return comps, nil
}

// Definitions resolves the assignment targets at the cursor. Import
// candidates are chased to their non-import origin; candidates
// without a resolvable module path are dropped.
func (a *Adapter) Definitions(source, path string, line, column int) ([]engine.Candidate, error) {
	targets, err := a.engine.AssignmentTargetsAtCursor(source, path, line, column)
	if err != nil {
		if errors.Is(err, engine.ErrStaleState) {
			return nil, nil
		}
		return nil, err
	}

	var defs []engine.Candidate
	for _, d := range targets {
		if d.ModulePath == "" {
			continue
		}
		if d.Kind == engine.KindImport {
			d = a.TopDefinition(d)
		}
		if d.ModulePath == "" {
			continue
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Usages returns every syntactic occurrence of the symbol at the
// cursor across the project path set.
func (a *Adapter) Usages(source, path string, line, column int) ([]engine.Candidate, error) {
	usages, err := a.engine.UsagesOf(source, path, line, column)
	if err != nil {
		if errors.Is(err, engine.ErrStaleState) {
			return nil, nil
		}
		return nil, err
	}
	return usages, nil
}

// Methods returns all completions in scope plus the rendered instance
// name: the parent of the engine's bound-scope sentinel completion
// when present, self.__class__ otherwise.
func (a *Adapter) Methods(source, path string, line, column int) ([]engine.Candidate, string, error) {
	comps, err := a.engine.ResolveAtCursor(source, path, line, column)
	if err != nil {
		if errors.Is(err, engine.ErrStaleState) {
			return nil, "", nil
		}
		return nil, "", err
	}

	instance := "self.__class__"
	for _, c := range comps {
		if c.Name == engine.InstanceSentinel {
			instance = c.ParentName
			break
		}
	}
	return comps, instance, nil
}

type defKey struct {
	modulePath string
	name       string
}

// TopDefinition follows a chain of import candidates to the first
// non-import, previously unseen definition. The worklist re-queries
// the engine at each candidate's own location (empty source asks the
// engine to load the module at the path). A chain that only revisits
// known candidates terminates with the last candidate reached.
func (a *Adapter) TopDefinition(d engine.Candidate) engine.Candidate {
	seen := map[defKey]bool{{d.ModulePath, d.Name}: true}
	cur := d
	for {
		targets, err := a.engine.AssignmentTargetsAtCursor("", cur.ModulePath, cur.Line, cur.Column)
		if err != nil {
			return cur
		}
		advanced := false
		for _, t := range targets {
			k := defKey{t.ModulePath, t.Name}
			if seen[k] {
				continue
			}
			seen[k] = true
			if t.Kind != engine.KindImport {
				return t
			}
			cur = t
			advanced = true
			break
		}
		if !advanced {
			return cur
		}
	}
}

// ArgumentLike reports whether a parameter description looks like a
// renderable argument (identifier, default value or quoted literal).
func ArgumentLike(desc string) bool {
	return argumentRe.MatchString(desc)
}
