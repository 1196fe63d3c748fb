package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/fidelmatch/internal/logger"
	"github.com/bastiangx/fidelmatch/pkg/config"
	"github.com/bastiangx/fidelmatch/pkg/match"
	"github.com/bastiangx/fidelmatch/pkg/validate"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for name matching.
type Server struct {
	engine       *match.Engine
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(engine *match.Engine, cfg *config.Config) *Server {
	return NewServerWithIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(engine *match.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		engine:  engine,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		logger:  logger.New("ipc"),
	}
}

// Start processes requests until the input stream ends. A clean EOF between
// messages returns nil; a truncated message returns the read error.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++
		s.handleRaw(raw)
		if err := s.writer.Flush(); err != nil {
			return fmt.Errorf("failed to flush response: %w", err)
		}
	}
}

func (s *Server) handleRaw(raw msgpack.RawMessage) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "invalid request", CodeBadRequest)
		return
	}
	s.handleRequest(req)
}

func (s *Server) handleRequest(req Request) {
	start := time.Now()
	switch req.Action {
	case "match":
		s.handleMatch(req, start)
	case "expand":
		s.handleExpand(req, start)
	case "translit":
		s.handleTranslit(req, start)
	case "batch_expand":
		s.handleBatchExpand(req, start)
	case "clear_cache":
		s.engine.ClearCache()
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	case "stats":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Stats: s.stats(), Dict: s.engine.Fingerprint()})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleMatch(req Request, start time.Time) {
	name, err := s.field(req, req.Name, "name")
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}
	query, err := s.field(req, req.Query, "query")
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}

	matched, err := s.engine.Matches(name, query, s.matchOptions(req.Options))
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}
	s.sendResponse(MatchResponse{ID: req.ID, Matched: matched, TimeTaken: since(start)})
}

func (s *Server) handleExpand(req Request, start time.Time) {
	query, err := s.field(req, req.Query, "query")
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}
	variants, err := s.engine.ExpandQuery(query)
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}
	s.sendVariants(req.ID, variants, start)
}

func (s *Server) handleTranslit(req Request, start time.Time) {
	text, err := s.field(req, req.Text, "text")
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}

	opts := s.config.TranslitOptions()
	if req.Partial != nil {
		opts.IncludePartialMatches = *req.Partial
	}
	if req.Cache != nil {
		opts.EnableCache = *req.Cache
	}

	variants, err := s.engine.Transliterate(text, opts)
	if err != nil {
		s.sendFailure(req.ID, err)
		return
	}
	s.sendVariants(req.ID, variants, start)
}

func (s *Server) handleBatchExpand(req Request, start time.Time) {
	if len(req.Queries) > s.config.Server.MaxBatch {
		s.sendError(req.ID, fmt.Sprintf("batch of %d exceeds max_batch %d", len(req.Queries), s.config.Server.MaxBatch), CodeBadRequest)
		return
	}

	results := make([][]string, 0, len(req.Queries))
	for i, raw := range req.Queries {
		query, err := s.field(req, raw, fmt.Sprintf("queries[%d]", i))
		if err != nil {
			s.sendFailure(req.ID, err)
			return
		}
		variants, err := s.engine.ExpandQuery(query)
		if err != nil {
			s.sendFailure(req.ID, err)
			return
		}
		results = append(results, variants)
	}
	s.sendResponse(BatchResponse{ID: req.ID, Results: results, TimeTaken: since(start)})
}

// field extracts a string field and runs the dangerous pattern check on request.
func (s *Server) field(req Request, v any, name string) (string, error) {
	str, err := validate.String(v, name)
	if err != nil {
		return "", err
	}
	if req.Strict {
		if err := validate.CheckDangerous(str, name); err != nil {
			return "", err
		}
	}
	return str, nil
}

// matchOptions applies per-request overrides to the configured defaults.
func (s *Server) matchOptions(o *RequestOptions) match.Options {
	opts := s.config.MatchOptions()
	if o == nil {
		return opts
	}
	if o.CaseSensitive != nil {
		opts.CaseSensitive = *o.CaseSensitive
	}
	if o.WholeWord != nil {
		opts.WholeWord = *o.WholeWord
	}
	if o.Fuzzy != nil {
		opts.Fuzzy = *o.Fuzzy
	}
	if o.MaxDistance != nil {
		opts.MaxDistance = *o.MaxDistance
	}
	if o.Phonetic != nil {
		opts.Phonetic = *o.Phonetic
	}
	return opts
}

func (s *Server) stats() map[string]int {
	stats := s.engine.Stats()
	stats["requests"] = s.requestCount
	return stats
}

func (s *Server) sendVariants(id string, variants []string, start time.Time) {
	s.sendResponse(VariantsResponse{
		ID:        id,
		Variants:  variants,
		Count:     len(variants),
		TimeTaken: since(start),
	})
}

// sendFailure maps validation and security errors to response codes.
func (s *Server) sendFailure(id string, err error) {
	var verr *validate.Error
	var serr *validate.SecurityError
	switch {
	case errors.As(err, &serr):
		s.logger.Warn("Rejected request", "id", id, "err", err)
		s.sendError(id, err.Error(), CodeForbidden)
	case errors.As(err, &verr):
		s.logger.Debug("Invalid request", "id", id, "err", err)
		s.sendError(id, err.Error(), CodeBadRequest)
	default:
		s.logger.Errorf("Request %s failed: %v", id, err)
		s.sendError(id, "internal server error", CodeInternal)
	}
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

func since(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
