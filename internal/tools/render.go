// Package tools exposes each INEGI client operation as an MCP tool with a
// declared parameter schema. Tools convert raw API JSON into bounded,
// readable markdown: totals before items, explicit truncation notes, "N/A"
// for missing fields. Upstream failures render as text, never as protocol
// errors; only malformed arguments are surfaced as JSON-RPC errors.
package tools

import (
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

func textResult(text string) protocol.CallResult {
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: text}}}
}

func errorResult(prefix string, err error) protocol.CallResult {
	return textResult(fmt.Sprintf("%s: %v", prefix, err))
}

func invalidArgs() *protocol.ResponseError {
	return &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
}

// orNA substitutes the fixed placeholder for absent values. Presentation
// contract: missing fields never render blank.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// grouped renders an integer with comma thousand separators.
func grouped(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
