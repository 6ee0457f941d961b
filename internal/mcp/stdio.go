package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// RunStdio serves line-delimited JSON-RPC over the given reader/writer pair
// until EOF. Notifications receive no response. Log output must go elsewhere;
// stdout carries only protocol frames.
func RunStdio(server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	writer := bufio.NewWriter(out)
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if err := encodeFlush(enc, writer, protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}); err != nil {
				return err
			}
			continue
		}

		// MCP clients emit notifications (no id) after initialize; they get no reply.
		if strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(context.Background(), req)
		if err != nil {
			log.WithError(err).Error("request handling failed")
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := encodeFlush(enc, writer, resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func encodeFlush(enc *json.Encoder, w *bufio.Writer, resp protocol.Response) error {
	if err := enc.Encode(resp); err != nil {
		return err
	}
	return w.Flush()
}
