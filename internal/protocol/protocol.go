// Package protocol defines the newline-delimited JSON wire types
// exchanged with the editor: one request object per input line, one
// response envelope per output line.
package protocol

import "encoding/json"

// LookupKind selects the operation a request asks for and the result
// shape the response carries.
type LookupKind string

const (
	LookupCompletions LookupKind = "completions"
	LookupDefinitions LookupKind = "definitions"
	LookupTooltip     LookupKind = "tooltip"
	LookupArguments   LookupKind = "arguments"
	LookupUsages      LookupKind = "usages"
	LookupMethods     LookupKind = "methods"
)

// Request is one decoded editor request. ID is opaque and echoed
// verbatim in the response so the client can correlate out of order.
type Request struct {
	ID     json.RawMessage `json:"id"`
	Lookup LookupKind      `json:"lookup"`
	Source string          `json:"source"`
	Path   string          `json:"path"`
	Line   int             `json:"line"`
	Column int             `json:"column"`
	Prefix string          `json:"prefix"`
	Config ConfigMap       `json:"config"`
}

// ConfigMap carries per-request configuration. Pointer fields
// distinguish "absent" from an explicit false so defaults apply only
// to missing keys.
type ConfigMap struct {
	UseSnippets               string   `json:"useSnippets"`
	ShowDescriptions          *bool    `json:"showDescriptions"`
	FuzzyMatcher              bool     `json:"fuzzyMatcher"`
	CaseInsensitiveCompletion *bool    `json:"caseInsensitiveCompletion"`
	ExtraPaths                []string `json:"extraPaths"`
}

// Response is the envelope written for every handled request. Results
// is always present, even when empty. Arguments is set only for the
// arguments lookup kind (an empty snippet still serializes).
type Response struct {
	ID        json.RawMessage `json:"id"`
	Results   interface{}     `json:"results"`
	Arguments *string         `json:"arguments,omitempty"`
}

// CompletionItem is one completions entry. Snippet and DisplayText
// appear only on argument-flavored entries.
type CompletionItem struct {
	Text        string `json:"text"`
	Type        string `json:"type"`
	Description string `json:"description"`
	RightLabel  string `json:"rightLabel"`
	Snippet     string `json:"snippet,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
}

// DefinitionItem reports a resolved definition site. Line is 0-based:
// clients of the original wire format subtract nothing, so the
// candidate's native 1-based line is decremented here and nowhere
// else. Usages and methods stay 1-based.
type DefinitionItem struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	FileName string `json:"fileName"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// TooltipItem is the single-entry tooltip shape. Line is 0-based, as
// in DefinitionItem.
type TooltipItem struct {
	Text        string `json:"text"`
	Type        string `json:"type"`
	FileName    string `json:"fileName"`
	Description string `json:"description"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
}

// UsageItem reports one syntactic occurrence. Line is the candidate's
// native 1-based line.
type UsageItem struct {
	Name       string `json:"name"`
	ModuleName string `json:"moduleName"`
	FileName   string `json:"fileName"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
}

// MethodItem is one methods entry. Line is the candidate's native
// 1-based line.
type MethodItem struct {
	Parent     string   `json:"parent"`
	Instance   string   `json:"instance"`
	Name       string   `json:"name"`
	Params     []string `json:"params"`
	ModuleName string   `json:"moduleName"`
	FileName   string   `json:"fileName"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
}
