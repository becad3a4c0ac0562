package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// legacyProperties are the resize parameters kept in every extract tool
// schema for backward compatibility. They have no effect.
func legacyProperties() map[string]interface{} {
	return map[string]interface{}{
		"resize": map[string]interface{}{
			"type":        "boolean",
			"description": "Legacy parameter, ignored. Images are always fitted to 512x512.",
		},
		"max_width": map[string]interface{}{
			"type":        "number",
			"description": "Legacy parameter, ignored.",
		},
		"max_height": map[string]interface{}{
			"type":        "number",
			"description": "Legacy parameter, ignored.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	fileProps := map[string]interface{}{
		"file_path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
	}
	urlProps := map[string]interface{}{
		"url": map[string]interface{}{
			"type":        "string",
			"description": "HTTP or HTTPS URL of the image",
		},
	}
	base64Props := map[string]interface{}{
		"base64": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded image data",
		},
		"mime_type": map[string]interface{}{
			"type":        "string",
			"description": "MIME type of the encoded image (default image/png)",
			"default":     "image/png",
		},
	}
	for k, v := range legacyProperties() {
		fileProps[k] = v
		urlProps[k] = v
		base64Props[k] = v
	}

	return []Tool{
		{
			Name:        "extract_image_from_file",
			Description: "Read an image from a local file path, fit it inside 512x512 and return its metadata plus the base64-encoded image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": fileProps,
				"required":   []string{"file_path"},
			},
		},
		{
			Name:        "extract_image_from_url",
			Description: "Fetch an image from an HTTP(S) URL, fit it inside 512x512 and return its metadata plus the base64-encoded image. Hostnames can be restricted via ALLOWED_DOMAINS.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": urlProps,
				"required":   []string{"url"},
			},
		},
		{
			Name:        "extract_image_from_base64",
			Description: "Decode an inline base64 image payload, fit it inside 512x512 and return its metadata plus the re-encoded base64 image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": base64Props,
				"required":   []string{"base64"},
			},
		},
		{
			Name:        "fetch_images",
			Description: "Fetch and process several images at once. Each source can be an HTTP(S) URL or a local file path; results are returned in input order, with a text item describing any source that failed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_sources": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Image URLs or local file paths. For a single image, provide a one-element list.",
					},
				},
				"required": []string{"image_sources"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
