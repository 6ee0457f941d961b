package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

type fakeTool struct {
	name    string
	schema  *protocol.JSONSchema
	invoked bool
	lastRaw json.RawMessage
}

func (f *fakeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: f.name, Description: "fake", InputSchema: f.schema}
}

func (f *fakeTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	f.invoked = true
	f.lastRaw = raw
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: "ok"}}}, nil
}

func requiredStringSchema(field string) *protocol.JSONSchema {
	return &protocol.JSONSchema{
		Type: "object",
		Properties: map[string]protocol.JSONSchema{
			field: {Type: "string"},
		},
		Required: []string{field},
	}
}

func TestToolboxDescribeKeepsRegistrationOrder(t *testing.T) {
	tb, err := NewToolbox(
		&fakeTool{name: "b_tool"},
		&fakeTool{name: "a_tool"},
	)
	require.NoError(t, err)

	descs := tb.Describe()
	require.Len(t, descs, 2)
	assert.Equal(t, "b_tool", descs[0].Name)
	assert.Equal(t, "a_tool", descs[1].Name)
}

func TestToolboxCallUnknownTool(t *testing.T) {
	tb, err := NewToolbox()
	require.NoError(t, err)

	_, rerr := tb.Call(context.Background(), "missing", nil)
	require.NotNil(t, rerr)
	assert.Equal(t, -32601, rerr.Code)
}

func TestToolboxCallValidatesSchema(t *testing.T) {
	tool := &fakeTool{name: "echo", schema: requiredStringSchema("query")}
	tb, err := NewToolbox(tool)
	require.NoError(t, err)

	// Missing required field is rejected before the tool runs.
	_, rerr := tb.Call(context.Background(), "echo", json.RawMessage(`{}`))
	require.NotNil(t, rerr)
	assert.Equal(t, -32602, rerr.Code)
	assert.False(t, tool.invoked)

	// Wrong type is rejected too.
	_, rerr = tb.Call(context.Background(), "echo", json.RawMessage(`{"query": 7}`))
	require.NotNil(t, rerr)
	assert.Equal(t, -32602, rerr.Code)

	// Valid arguments reach the tool.
	result, rerr := tb.Call(context.Background(), "echo", json.RawMessage(`{"query":"pib"}`))
	require.Nil(t, rerr)
	assert.True(t, tool.invoked)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "ok", result.Content[0].Text)
}

func TestToolboxCallEmptyArgsAgainstOptionalSchema(t *testing.T) {
	tool := &fakeTool{name: "list", schema: &protocol.JSONSchema{Type: "object"}}
	tb, err := NewToolbox(tool)
	require.NoError(t, err)

	_, rerr := tb.Call(context.Background(), "list", nil)
	require.Nil(t, rerr)
	assert.True(t, tool.invoked)
}
