package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name. Arguments are validated
// against the tool's declared input schema before dispatch.
type Toolbox struct {
	tools   map[string]Tool
	order   []string
	schemas map[string]*gojsonschema.Schema
}

// NewToolbox constructs a toolbox with the provided tools. Schemas are
// compiled eagerly so a malformed descriptor fails at startup, not on call.
func NewToolbox(tools ...Tool) (*Toolbox, error) {
	tb := &Toolbox{
		tools:   make(map[string]Tool, len(tools)),
		schemas: make(map[string]*gojsonschema.Schema, len(tools)),
	}
	for _, t := range tools {
		desc := t.Descriptor()
		tb.tools[desc.Name] = t
		tb.order = append(tb.order, desc.Name)
		if desc.InputSchema == nil {
			continue
		}
		raw, err := json.Marshal(desc.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema for %s: %w", desc.Name, err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", desc.Name, err)
		}
		tb.schemas[desc.Name] = schema
	}
	return tb, nil
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call validates arguments and invokes a named tool.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32601, Message: "tool not found"}
	}
	if schema := tb.schemas[name]; schema != nil {
		if rerr := validateArgs(schema, args); rerr != nil {
			return protocol.CallResult{}, rerr
		}
	}
	return tool.Invoke(ctx, args)
}

func validateArgs(schema *gojsonschema.Schema, raw json.RawMessage) *protocol.ResponseError {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &protocol.ResponseError{Code: -32602, Message: fmt.Sprintf("invalid arguments: %v", err)}
	}
	if !result.Valid() {
		return &protocol.ResponseError{Code: -32602, Message: fmt.Sprintf("invalid arguments: %s", result.Errors()[0])}
	}
	return nil
}
