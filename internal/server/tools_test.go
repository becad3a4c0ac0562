package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"extract_image_from_file",
		"extract_image_from_url",
		"extract_image_from_base64",
		"fetch_images",
	}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
		if tool.Description == "" {
			t.Errorf("%s has no description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("%s schema type: got %v, want object", tool.Name, tool.InputSchema["type"])
		}
	}
	for _, name := range want {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing tool %s", name)
		}
	}
}

func TestToolDefinitions_LegacyParamsPresent(t *testing.T) {
	// The legacy resize parameters stay in every extract schema for
	// backward compatibility even though they are ignored.
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "fetch_images" {
			continue
		}
		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Fatalf("%s has no properties map", tool.Name)
		}
		for _, legacy := range []string{"resize", "max_width", "max_height"} {
			if _, present := props[legacy]; !present {
				t.Errorf("%s schema is missing legacy parameter %s", tool.Name, legacy)
			}
		}
	}
}

func TestToolDefinitions_RequiredFields(t *testing.T) {
	required := map[string]string{
		"extract_image_from_file":   "file_path",
		"extract_image_from_url":    "url",
		"extract_image_from_base64": "base64",
		"fetch_images":              "image_sources",
	}

	for _, tool := range GetToolDefinitions() {
		wantField := required[tool.Name]
		fields, ok := tool.InputSchema["required"].([]string)
		if !ok || len(fields) != 1 || fields[0] != wantField {
			t.Errorf("%s required fields: got %v, want [%s]", tool.Name, tool.InputSchema["required"], wantField)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer()

	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result is %T, want map", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools is %T, want []Tool", result["tools"])
	}
	if len(tools) != 4 {
		t.Errorf("tools/list count: got %d, want 4", len(tools))
	}
}
