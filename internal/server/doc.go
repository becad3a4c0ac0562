// Package server implements the MCP (Model Context Protocol) server for
// image extraction tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the image
// ingestion pipeline through the MCP protocol, letting AI clients pull
// images from files, URLs and inline base64 payloads in a normalized,
// size-bounded form.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - extract_image_from_file: Local file path input
//   - extract_image_from_url: Remote HTTP(S) input, optionally restricted by
//     a hostname allow-list
//   - extract_image_from_base64: Inline base64 payload input
//   - fetch_images: Batch variant accepting a mixed list of URLs and paths,
//     processed concurrently
//
// # Response Shape
//
// A successful extract call returns exactly two content items, in order: a
// text item whose payload is the JSON-encoded metadata of the final buffer
// ({"width","height","format","size"}), then an image item with the buffer's
// base64 encoding and the entry point's MIME hint. Failures return a single
// text item with isError set; pipeline errors never become JSON-RPC errors
// and never crash the server.
//
// # Configuration
//
// Behavior is controlled by environment variables read once at startup:
// MAX_IMAGE_SIZE (byte ceiling, default 10 MiB) and ALLOWED_DOMAINS
// (comma-separated hostname suffix allow-list, empty means unrestricted).
package server
