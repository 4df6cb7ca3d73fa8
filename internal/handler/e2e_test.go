package handler

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/RCastroAB/autocomplete-python/internal/config"
	"github.com/RCastroAB/autocomplete-python/internal/engine/lexical"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

var kindVocabulary = map[string]bool{
	"import":   true,
	"variable": true,
	"value":    true,
	"constant": true,
	"builtin":  true,
	"keyword":  true,
	"property": true,
	"function": true,
	"class":    true,
}

func TestCompletionsEndToEnd(t *testing.T) {
	s := NewServer(lexical.New(), &config.Config{}, log.New(io.Discard))

	out, err := s.HandleRequest([]byte(`{"id":1,"lookup":"completions","source":"import os\nos.pa","path":"","line":1,"column":5,"prefix":"pa"}`))
	if err != nil {
		t.Fatalf("HandleRequest: %v", err)
	}

	var resp struct {
		ID      json.RawMessage           `json:"id"`
		Results []protocol.CompletionItem `json:"results"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, out)
	}
	if string(resp.ID) != "1" {
		t.Errorf("id = %s, want 1", resp.ID)
	}

	found := false
	for _, item := range resp.Results {
		if !kindVocabulary[item.Type] {
			t.Errorf("type %q outside the kind vocabulary (item %+v)", item.Type, item)
		}
		if strings.HasPrefix(strings.ToLower(item.Text), "pa") {
			found = true
		}
	}
	if !found {
		t.Errorf("no completion starting with %q in %+v", "pa", resp.Results)
	}
}

func TestUsagesEndToEnd(t *testing.T) {
	s := NewServer(lexical.New(), &config.Config{}, log.New(io.Discard))

	src := "total = 1\nprint(total)\n"
	out, err := s.HandleRequest([]byte(`{"id":"u","lookup":"usages","source":` + mustJSON(src) + `,"path":"","line":1,"column":0}`))
	if err != nil {
		t.Fatalf("HandleRequest: %v", err)
	}

	var resp struct {
		Results []protocol.UsageItem `json:"results"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("usages = %+v, want both occurrences of total", resp.Results)
	}
	if resp.Results[0].Line != 1 || resp.Results[1].Line != 2 {
		t.Errorf("native line numbers expected, got %+v", resp.Results)
	}
}

func mustJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}
