package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/pterm/pterm"

	"fuelsys-caltool/pkg/workspace"
)

// Server exposes the published workspace as JSON on localhost so the
// configuration can be inspected from a browser or scripted against.
type Server struct {
	ws   workspace.Workspace
	port int
}

// NewServer returns a viewer for the given workspace.
func NewServer(ws workspace.Workspace, port int) *Server {
	return &Server{ws: ws, port: port}
}

// Start blocks serving HTTP until the process exits.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/workspace", s.handleWorkspace)
	mux.HandleFunc("/api/value/", s.handleValue)

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	pterm.Info.Printf("Serving published configuration on http://%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	names := make([]string, 0)
	for name := range s.ws.Snapshot() {
		names = append(names, name)
	}
	sort.Strings(names)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<html><head><title>fuelsys-caltool</title></head><body>")
	fmt.Fprint(w, "<h1>Published calibration workspace</h1><ul>")
	for _, name := range names {
		fmt.Fprintf(w, `<li><a href="/api/value/%s">%s</a></li>`, name, name)
	}
	fmt.Fprint(w, `</ul><p><a href="/api/workspace">full snapshot</a></p></body></html>`)
}

func (s *Server) handleWorkspace(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.ws.Snapshot())
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/api/value/"):]
	v, ok := s.ws.Get(name)
	if !ok {
		http.Error(w, fmt.Sprintf("no published value named %q", name), http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"name": name, "value": v})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
