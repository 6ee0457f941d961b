package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests via POST.
// Expects a single JSON-RPC request per call. Clients should POST to the root path.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp, err := server.Handle(r.Context(), req)
		if err != nil {
			writeJSON(w, WriteError(req.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Infof("MCP HTTP server listening on %s", addr)
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
