package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/RCastroAB/autocomplete-python/internal/engine"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

func boolPtr(v bool) *bool { return &v }

func TestNewSessionDefaults(t *testing.T) {
	testCases := []struct {
		name string
		raw  protocol.ConfigMap
		want *Session
	}{
		{
			name: "empty map takes defaults",
			raw:  protocol.ConfigMap{},
			want: &Session{ShowDescriptions: true, CaseInsensitive: true},
		},
		{
			name: "explicit values override",
			raw: protocol.ConfigMap{
				UseSnippets:               SnippetsAll,
				ShowDescriptions:          boolPtr(false),
				FuzzyMatcher:              true,
				CaseInsensitiveCompletion: boolPtr(false),
			},
			want: &Session{UseSnippets: SnippetsAll, FuzzyMatcher: true},
		},
		{
			name: "extra paths drop empties and duplicates",
			raw: protocol.ConfigMap{
				ExtraPaths: []string{"/x", "", "/y", "/x"},
			},
			want: &Session{ShowDescriptions: true, CaseInsensitive: true, ExtraPaths: []string{"/x", "/y"}},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSession(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unmatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionApplySearchPaths(t *testing.T) {
	eng := engine.NewMockEngine()
	baseline := []string{"/base1", "/base2"}

	raw := protocol.ConfigMap{ExtraPaths: []string{"/x", "/base1"}}
	NewSession(raw).Apply(eng, baseline, "/proj/root")

	want := []string{"/proj/root", "/base1", "/base2", "/x"}
	if diff := cmp.Diff(want, eng.SearchPaths); diff != "" {
		t.Errorf("unmatch (-want +got):\n%s", diff)
	}
	if !eng.CaseInsensitive {
		t.Error("default case sensitivity not applied")
	}
}

func TestSessionApplyIsolation(t *testing.T) {
	// A request with extraPaths must not leak them into the next
	// request's effective search path.
	eng := engine.NewMockEngine()
	baseline := []string{"/base"}

	first := protocol.ConfigMap{ExtraPaths: []string{"/x"}}
	NewSession(first).Apply(eng, baseline, "")

	second := protocol.ConfigMap{}
	NewSession(second).Apply(eng, baseline, "")

	for _, p := range eng.SearchPaths {
		if p == "/x" {
			t.Fatalf("extra path leaked across requests: %v", eng.SearchPaths)
		}
	}
	if eng.SetSearchPathsCalls != 2 {
		t.Errorf("SetSearchPaths calls = %d, want 2", eng.SetSearchPathsCalls)
	}
}

func TestSessionApplyCaseSensitivity(t *testing.T) {
	eng := engine.NewMockEngine()

	raw := protocol.ConfigMap{CaseInsensitiveCompletion: boolPtr(false)}
	NewSession(raw).Apply(eng, nil, "")
	if eng.CaseInsensitive {
		t.Error("explicit false ignored")
	}

	next := protocol.ConfigMap{}
	NewSession(next).Apply(eng, nil, "")
	if !eng.CaseInsensitive {
		t.Error("default true not re-asserted on next request")
	}
}
