package server

import (
	"encoding/base64"
	"encoding/json"

	"github.com/brightpixel/image-extract-mcp/internal/pipeline"
)

// ContentItem is one element of a tool response. Type is "text" or "image";
// this server never produces the resource variant.
type ContentItem struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// ToolResponse is the ordered content list returned by a tools/call, with
// IsError set when the call failed.
type ToolResponse struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// successResponse builds the two-item success shape: a text item holding the
// JSON-encoded metadata of the final buffer, followed by the image item with
// the buffer's base64 encoding. The MIME type is the entry point's hint,
// never re-derived from the re-encoded format.
func successResponse(res *pipeline.Result) *ToolResponse {
	metaJSON, _ := json.Marshal(res.Meta)

	return &ToolResponse{
		Content: []ContentItem{
			{Type: "text", Text: string(metaJSON)},
			imageItem(res),
		},
	}
}

// failureResponse builds the single-item error shape shared by all entry
// points. The pipeline error text is the user-facing message.
func failureResponse(err error) *ToolResponse {
	return &ToolResponse{
		Content: []ContentItem{
			{Type: "text", Text: err.Error()},
		},
		IsError: true,
	}
}

func imageItem(res *pipeline.Result) ContentItem {
	return ContentItem{
		Type:     "image",
		Data:     base64.StdEncoding.EncodeToString(res.Data),
		MimeType: res.MimeType,
	}
}
