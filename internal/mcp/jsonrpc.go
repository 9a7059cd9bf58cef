// Package mcp serves the portfolio data to MCP clients over a
// newline-delimited JSON-RPC 2.0 stdio transport.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aryanbv/folio/internal/aggregate"
	"github.com/aryanbv/folio/internal/catalog"
)

// protocolVersion is the MCP revision the server speaks.
const protocolVersion = "2024-11-05"

// maxLineBytes bounds a single request line.
const maxLineBytes = 1 << 20

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Deps are the data sources the tools read from.
type Deps struct {
	Aggregator *aggregate.Aggregator
	Catalog    *catalog.Catalog
	Logger     *slog.Logger
	Version    string

	// ShowcaseLimit caps the live repositories merged into search_projects.
	ShowcaseLimit int
}

// DefaultShowcaseLimit applies when Deps.ShowcaseLimit is unset.
const DefaultShowcaseLimit = 6

// Server is an MCP stdio server.
type Server struct {
	tools  []toolDef
	index  map[string]int
	deps   Deps
	logger *slog.Logger
}

type toolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     toolHandler
}

type toolHandler func(ctx context.Context, args json.RawMessage) (any, error)

type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

// jsonrpcResponse always carries an id; a parse error answers with null.
type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type toolsCallResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError"`
}

type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolListEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// NewServer constructs a Server with every portfolio tool registered.
func NewServer(deps Deps) *Server {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.ShowcaseLimit <= 0 {
		deps.ShowcaseLimit = DefaultShowcaseLimit
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{deps: deps, logger: logger, index: map[string]int{}}
	addTools(s)
	return s
}

// registerTool adds def, replacing any tool already registered under its name.
func (s *Server) registerTool(def toolDef) {
	if i, ok := s.index[def.Name]; ok {
		s.tools[i] = def
		return
	}
	s.index[def.Name] = len(s.tools)
	s.tools = append(s.tools, def)
}

// Run reads requests from r and writes one response line per request to w
// until ctx is cancelled or r reaches EOF, both of which return nil.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lineCh)
		for scanner.Scan() {
			select {
			case lineCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("reading request: %w", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lineCh:
			if !ok {
				select {
				case err := <-errCh:
					return err
				default:
					return nil
				}
			}
			resp, reply := s.handleLine(ctx, line)
			if !reply {
				continue
			}
			if err := writeResponse(bw, resp); err != nil {
				return err
			}
		}
	}
}

// handleLine decodes one request. Notifications get no reply.
func (s *Server) handleLine(ctx context.Context, line string) (jsonrpcResponse, bool) {
	var req jsonrpcRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return errorResponse(nil, codeParseError, "Parse error"), true
	}
	if req.ID == nil {
		s.logger.Debug("notification", "method", req.Method)
		return jsonrpcResponse{}, false
	}
	return s.dispatch(ctx, req), true
}

func (s *Server) dispatch(ctx context.Context, req jsonrpcRequest) jsonrpcResponse {
	resp := jsonrpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "folio",
				"version": s.deps.Version,
			},
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		resp.Result = map[string]any{"tools": s.listTools()}
	case "tools/call":
		var params toolsCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
			return errorResponse(req.ID, codeInvalidParams, "Invalid params")
		}
		resp.Result = s.callTool(ctx, params)
	default:
		return errorResponse(req.ID, codeMethodNotFound, "Method not found")
	}
	return resp
}

func (s *Server) listTools() []toolListEntry {
	entries := make([]toolListEntry, 0, len(s.tools))
	for _, t := range s.tools {
		entries = append(entries, toolListEntry{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return entries
}

// callTool runs a tool. Tool failures are reported in the result with
// isError set, never as JSON-RPC errors.
func (s *Server) callTool(ctx context.Context, params toolsCallParams) toolsCallResult {
	i, ok := s.index[params.Name]
	if !ok {
		return textResult(fmt.Sprintf("unknown tool: %s", params.Name), true)
	}
	tool := s.tools[i]

	args := params.Arguments
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage(`{}`)
	}

	start := time.Now()
	result, err := tool.Handler(ctx, args)
	s.logger.Debug("tool call", "tool", tool.Name, "duration", time.Since(start), "err", err)
	if err != nil {
		return textResult(err.Error(), true)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return textResult(err.Error(), true)
	}
	return textResult(string(data), false)
}

func textResult(text string, isError bool) toolsCallResult {
	return toolsCallResult{
		Content: []mcpContent{{Type: "text", Text: text}},
		IsError: isError,
	}
}

func errorResponse(id *json.RawMessage, code int, message string) jsonrpcResponse {
	return jsonrpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &jsonrpcError{Code: code, Message: message},
	}
}

// writeResponse marshals resp as a single JSON line and flushes the writer.
func writeResponse(bw *bufio.Writer, resp jsonrpcResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := bw.Write(data); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
