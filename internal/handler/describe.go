package handler

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/RCastroAB/autocomplete-python/internal/engine"
)

// basicTypes maps native engine kinds onto the response kind
// vocabulary; kinds outside the table pass through unchanged.
var basicTypes = map[string]string{
	engine.KindModule:    "import",
	engine.KindInstance:  "variable",
	engine.KindStatement: "value",
	engine.KindParam:     "variable",
}

// displayNodes are the fragment node types whose source text renders
// in the right-hand label of a value candidate.
var displayNodes = map[string]bool{
	"InstanceElement": true,
	"String":          true,
	"Node":            true,
	"Lambda":          true,
	"Number":          true,
}

// definitionType classifies a candidate for the response shapes:
// builtins first, all-uppercase values as constants, then the basic
// type table.
func definitionType(c engine.Candidate) string {
	if c.Kind != engine.KindImport && c.Kind != engine.KindKeyword && c.Builtin {
		return "builtin"
	}
	if c.Kind == engine.KindStatement && isUpper(c.Name) {
		return "constant"
	}
	if t, ok := basicTypes[c.Kind]; ok {
		return t
	}
	return c.Kind
}

// isUpper matches Python's str.isupper: at least one cased rune and no
// lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// rightLabel renders the inline sub-expressions found under a value
// candidate's definition node, newlines stripped. Other kinds render
// empty.
func rightLabel(kind string, frags []engine.Fragment) string {
	if kind != engine.KindStatement {
		return ""
	}
	return renderFragments(frags)
}

func renderFragments(frags []engine.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if displayNodes[f.Node] {
			b.WriteString(f.Code)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", "")
}

// renderSignature synthesizes a "name(param, ...)" description for
// use when doc strings are off. Modules and parameterless candidates
// render empty.
func renderSignature(name, kind string, params []engine.Param) string {
	if kind == engine.KindModule || len(params) == 0 {
		return ""
	}
	descs := make([]string, 0, len(params))
	for _, p := range params {
		descs = append(descs, p.Description)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(descs, ", "))
}
