// Package handler owns the request loop: decode one JSON request per
// input line, reconfigure the engine, run the lookup, and write one
// JSON response line. A failing request is contained here and never
// terminates the loop.
package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/RCastroAB/autocomplete-python/internal/config"
	"github.com/RCastroAB/autocomplete-python/internal/engine"
	"github.com/RCastroAB/autocomplete-python/internal/lookup"
	"github.com/RCastroAB/autocomplete-python/internal/pkgroot"
	"github.com/RCastroAB/autocomplete-python/internal/protocol"
)

// Server dispatches editor requests against an analysis engine.
// Requests run strictly sequentially: engine search paths and case
// sensitivity are process-wide, so every request re-asserts them
// before querying. Running requests concurrently requires one engine
// and one Server per in-flight request.
type Server struct {
	engine   engine.Engine
	adapter  *lookup.Adapter
	baseline []string
	logger   *log.Logger
	Trace    bool
}

func NewServer(eng engine.Engine, cfg *config.Config, logger *log.Logger) *Server {
	var baseline []string
	if cfg != nil {
		baseline = cfg.SearchPaths
	}
	return &Server{
		engine:   eng,
		adapter:  lookup.NewAdapter(eng),
		baseline: baseline,
		logger:   logger,
	}
}

// Serve reads requests from r until end of input, writing exactly one
// response line per handled request to w. Blank lines are skipped; a
// line that fails to decode, errors, or panics mid-handling is logged
// to the diagnostics channel and produces no response. The only way
// the loop ends is a clean end of input.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			s.serveLine(trimmed, writer)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// ServeOne handles a single raw request, for one-shot invocation with
// requests passed as command-line arguments. Failures are contained
// the same way as in the loop.
func (s *Server) ServeOne(raw string, w io.Writer) {
	writer := bufio.NewWriter(w)
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		s.serveLine(trimmed, writer)
	}
}

func (s *Server) serveLine(line string, w *bufio.Writer) {
	if s.Trace {
		s.logger.Debug("request", "line", line)
	}
	resp, err := s.HandleRequest([]byte(line))
	if err != nil {
		s.logger.Error("request failed", "err", err)
		return
	}
	if s.Trace {
		s.logger.Debug("response", "line", string(resp))
	}
	if _, err := w.Write(resp); err != nil {
		s.logger.Error("write response", "err", err)
		return
	}
	if err := w.WriteByte('\n'); err != nil {
		s.logger.Error("write response", "err", err)
		return
	}
	if err := w.Flush(); err != nil {
		s.logger.Error("flush response", "err", err)
	}
}

// HandleRequest decodes and answers one request, returning the
// serialized response without the trailing newline. Panics while
// handling are recovered and returned as errors, the stack going to
// the diagnostics channel.
func (s *Server) HandleRequest(data []byte) (out []byte, err error) {
	// Prevent any uncaught panics from taking the whole loop down.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			s.logger.Errorf("panic serving request: %v\n%s", r, buf)
			out, err = nil, fmt.Errorf("unexpected panic: %v", r)
		}
	}()

	var req protocol.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("malformed request: %w", err)
	}

	resp, err := s.process(&req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

func (s *Server) process(req *protocol.Request) (*protocol.Response, error) {
	sess := config.NewSession(req.Config)
	root := pkgroot.Find(req.Path)
	sess.Apply(s.engine, s.baseline, root)

	switch req.Lookup {
	case protocol.LookupDefinitions:
		return s.serializeDefinitions(req)
	case protocol.LookupTooltip:
		return s.serializeTooltip(req)
	case protocol.LookupArguments:
		return s.serializeArguments(req, sess)
	case protocol.LookupUsages:
		return s.serializeUsages(req)
	case protocol.LookupMethods:
		return s.serializeMethods(req)
	default:
		// Unknown kinds fall through to completions.
		return s.serializeCompletions(req, sess)
	}
}
