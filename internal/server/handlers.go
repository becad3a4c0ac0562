package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/brightpixel/image-extract-mcp/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "extract_image_from_file").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// Pipeline failures never surface as JSON-RPC errors: each handler converts
// them into a single-item, isError=true tool response so nothing crosses the
// tool boundary as an exception. JSON-RPC errors are reserved for malformed
// params and unknown tool names.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (*ToolResponse, error) {
	switch name {
	case "extract_image_from_file":
		return s.handleExtractFromFile(args)
	case "extract_image_from_url":
		return s.handleExtractFromURL(args)
	case "extract_image_from_base64":
		return s.handleExtractFromBase64(args)
	case "fetch_images":
		return s.handleFetchImages(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// legacyArgs are accepted on every extract tool for backward compatibility
// with older clients. They are no-ops: the bounding box is fixed.
type legacyArgs struct {
	Resize    bool `json:"resize"`
	MaxWidth  int  `json:"max_width"`
	MaxHeight int  `json:"max_height"`
}

// === Extraction Handlers ===

type extractFileArgs struct {
	FilePath string `json:"file_path"`
	legacyArgs
}

func (s *Server) handleExtractFromFile(args json.RawMessage) (*ToolResponse, error) {
	var a extractFileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if s.cfg.Debug() {
		log.Printf("extract_image_from_file: %s", a.FilePath)
	}

	res, err := s.pipe.Run(context.Background(), pipeline.FileSource{Path: a.FilePath})
	if err != nil {
		return failureResponse(err), nil
	}
	return successResponse(res), nil
}

type extractURLArgs struct {
	URL string `json:"url"`
	legacyArgs
}

func (s *Server) handleExtractFromURL(args json.RawMessage) (*ToolResponse, error) {
	var a extractURLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if s.cfg.Debug() {
		log.Printf("extract_image_from_url: %s", a.URL)
	}

	res, err := s.pipe.Run(context.Background(), s.urlSource(a.URL))
	if err != nil {
		return failureResponse(err), nil
	}
	return successResponse(res), nil
}

type extractBase64Args struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mime_type"`
	legacyArgs
}

func (s *Server) handleExtractFromBase64(args json.RawMessage) (*ToolResponse, error) {
	var a extractBase64Args
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MimeType == "" {
		a.MimeType = "image/png"
	}

	res, err := s.pipe.Run(context.Background(), pipeline.Base64Source{
		Payload:  a.Base64,
		MimeType: a.MimeType,
	})
	if err != nil {
		return failureResponse(err), nil
	}
	return successResponse(res), nil
}

// === Batch Fetch Handler ===

type fetchImagesArgs struct {
	ImageSources []string `json:"image_sources"`
}

// handleFetchImages processes a mixed list of URLs and local paths
// concurrently. The response carries one content item per source in input
// order: an image item on success, a text item describing the failure
// otherwise. Per-source failures do not fail the call.
func (s *Server) handleFetchImages(args json.RawMessage) (*ToolResponse, error) {
	var a fetchImagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.ImageSources) == 0 {
		return failureResponse(fmt.Errorf("no image sources provided")), nil
	}

	if s.cfg.Debug() {
		log.Printf("fetch_images: %d sources", len(a.ImageSources))
	}

	items := make([]ContentItem, len(a.ImageSources))
	var wg sync.WaitGroup
	for i, src := range a.ImageSources {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			res, err := s.pipe.Run(context.Background(), s.sourceFor(src))
			if err != nil {
				items[i] = ContentItem{Type: "text", Text: fmt.Sprintf("failed to process %s: %v", src, err)}
				return
			}
			items[i] = imageItem(res)
		}(i, src)
	}
	wg.Wait()

	return &ToolResponse{Content: items}, nil
}

// sourceFor classifies a source string as a remote URL or a local path.
func (s *Server) sourceFor(src string) pipeline.Source {
	if isRemoteURL(src) {
		return s.urlSource(src)
	}
	return pipeline.FileSource{Path: src}
}

func (s *Server) urlSource(rawURL string) pipeline.URLSource {
	return pipeline.URLSource{
		URL:            rawURL,
		Client:         s.client,
		AllowedDomains: s.cfg.AllowedDomains,
		MaxBytes:       s.cfg.MaxImageSize,
	}
}

func isRemoteURL(src string) bool {
	u, err := url.Parse(src)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
