// Package engine declares the capability interface of the static
// analysis oracle the bridge queries, along with the candidate model
// shared by every lookup kind.
package engine

import "errors"

// ErrStaleState marks a transient lookup failure caused by
// inconsistent internal engine state. Callers treat it as "no
// candidates" rather than a request failure.
var ErrStaleState = errors.New("engine: stale lookup state")

// Native candidate kinds the serializers care about. An engine may
// report kinds outside this set; they pass through classification
// unchanged.
const (
	KindModule    = "module"
	KindInstance  = "instance"
	KindStatement = "statement"
	KindParam     = "param"
	KindImport    = "import"
	KindKeyword   = "keyword"
	KindClass     = "class"
)

// InstanceSentinel is the completion name an engine injects into
// bound-instance scopes. Its parent names the instance for the
// methods lookup; engines without the sentinel get the
// self.__class__ fallback.
const InstanceSentinel = "__autocomplete_python"

// Param is one parameter of a callable candidate. Description is the
// engine's rendering, e.g. "count" or "count=0".
type Param struct {
	Name        string
	Description string
}

// Fragment is one inline sub-expression directly under a candidate's
// definition node, tagged with the engine's node type name.
type Fragment struct {
	Node string
	Code string
}

// Candidate is one unit of engine output: a completion, definition,
// usage or signature parameter. Line is 1-based, Column 0-based.
type Candidate struct {
	Name       string
	Kind       string
	ModuleName string
	ModulePath string
	Line       int
	Column     int
	ParentName string
	ParentKind string
	Params     []Param
	Doc        string
	Builtin    bool
	Fragments  []Fragment
}

// Signature is one call signature visible at the cursor.
type Signature struct {
	Name      string
	Params    []Param
	Doc       string
	Fragments []Fragment
}

// Engine is the narrow interface the bridge consumes. An empty source
// argument asks the engine to load the module at path instead, which
// import-chain resolution relies on. Search paths and case
// sensitivity are process-wide engine settings; the bridge re-asserts
// both before every request.
type Engine interface {
	ResolveAtCursor(source, path string, line, column int) ([]Candidate, error)
	SignaturesAtCursor(source, path string, line, column int) ([]Signature, error)
	AssignmentTargetsAtCursor(source, path string, line, column int) ([]Candidate, error)
	UsagesOf(source, path string, line, column int) ([]Candidate, error)
	SetSearchPaths(paths []string)
	SetCaseInsensitive(v bool)
}
