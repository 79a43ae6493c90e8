// CLAUDE:SUMMARY MCP tool surface — exposes extraction and run statistics over the Model Context Protocol.
package pdfscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers the extraction tools on an MCP server. defaultOut is
// the artifact directory used when a call does not name one.
func (e *Extractor) RegisterMCP(srv *mcp.Server, defaultOut string) {
	e.registerExtractTool(srv, defaultOut)
	e.registerStatsTool(srv, defaultOut)
	e.registerVerifyTool(srv, defaultOut)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// registerTool wires a typed endpoint as an MCP tool: decode failures and
// endpoint errors come back as tool errors, successes as marshalled JSON.
func registerTool[Req any](srv *mcp.Server, tool *mcp.Tool, endpoint func(context.Context, *Req) (any, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r Req
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
				var res mcp.CallToolResult
				res.SetError(fmt.Errorf("invalid arguments: %w", err))
				return &res, nil
			}
		}

		resp, err := endpoint(ctx, &r)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(errors.New(err.Error()))
			return &res, nil
		}

		data, err := json.Marshal(resp)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("marshal: %w", err))
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

// --- extract ---

type extractReq struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

func (e *Extractor) registerExtractTool(srv *mcp.Server, defaultOut string) {
	tool := &mcp.Tool{
		Name:        "auditpipe_extract",
		Description: "Extract text, tables and facts from a PDF audit report and write the artifact set. Returns run statistics.",
		InputSchema: inputSchema(map[string]any{
			"path":       map[string]any{"type": "string", "description": "Source PDF path"},
			"output_dir": map[string]any{"type": "string", "description": "Artifact directory (optional)"},
		}, []string{"path"}),
	}

	registerTool(srv, tool, func(ctx context.Context, r *extractReq) (any, error) {
		if r.Path == "" {
			return nil, errors.New("path is required")
		}
		out := r.OutputDir
		if out == "" {
			out = defaultOut
		}

		doc, err := e.ExtractAll(ctx, r.Path)
		if err != nil {
			return nil, err
		}
		if err := WriteArtifacts(doc, out, e.cfg.Logger); err != nil {
			return nil, err
		}
		return map[string]any{
			"output_dir":      out,
			"statistics":      doc.Statistics,
			"quality_metrics": doc.QualityMetrics,
		}, nil
	})
}

// --- stats ---

type statsReq struct {
	Dir string `json:"dir"`
}

func (e *Extractor) registerStatsTool(srv *mcp.Server, defaultOut string) {
	tool := &mcp.Tool{
		Name:        "auditpipe_stats",
		Description: "Read the statistics and quality metrics of a previously written artifact set.",
		InputSchema: inputSchema(map[string]any{
			"dir": map[string]any{"type": "string", "description": "Artifact directory (optional)"},
		}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, r *statsReq) (any, error) {
		dir := r.Dir
		if dir == "" {
			dir = defaultOut
		}
		payload := make(map[string]json.RawMessage, 2)
		for key, name := range map[string]string{
			"statistics":      ArtifactStatistics,
			"quality_metrics": ArtifactQuality,
		} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			payload[key] = json.RawMessage(data)
		}
		return payload, nil
	})
}

// --- verify ---

type verifyReq struct {
	Dir string `json:"dir"`
}

func (e *Extractor) registerVerifyTool(srv *mcp.Server, defaultOut string) {
	tool := &mcp.Tool{
		Name:        "auditpipe_verify",
		Description: "Validate a previously written artifact set against the output schemas.",
		InputSchema: inputSchema(map[string]any{
			"dir": map[string]any{"type": "string", "description": "Artifact directory (optional)"},
		}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, r *verifyReq) (any, error) {
		dir := r.Dir
		if dir == "" {
			dir = defaultOut
		}
		if err := VerifyArtifacts(dir); err != nil {
			return map[string]any{"valid": false, "error": err.Error()}, nil
		}
		return map[string]any{"valid": true}, nil
	})
}
