// pkg/diag/routes.go
package diag

import (
	"io"
	"net/http"

	"github.com/slipstream-mp/slipstream-server/pkg/codec"
	"github.com/slipstream-mp/slipstream-server/pkg/subsystem"
)

const greeting = "<!DOCTYPE html><article><h1>Hello World!</h1><section><p>Slipstream Server can now serve HTTP requests!</p></section></article></html>"

// magic endpoint
var magicPath = string([]byte{0x2f, 0x6b, 0x69, 0x74, 0x74, 0x79})

var magic = string([]byte{
	0x20, 0x2f, 0x5c, 0x5f,
	0x2f, 0x5c, 0x0a, 0x28,
	0x20, 0x6f, 0x2e, 0x6f,
	0x20, 0x29, 0x0a, 0x20,
	0x3e, 0x20, 0x5e, 0x20,
	0x3c, 0x0a,
})

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	io.WriteString(w, greeting)
}

func handleMagic(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	io.WriteString(w, magic)
}

// handleHealth answers 200 unconditionally; the signal is in the body. Only
// Bad counts against the process, anything in a startup or shutdown phase is
// treated as fine.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	bad := 0
	for _, st := range s.reg.GetAll() {
		switch st {
		case subsystem.Starting, subsystem.ShuttingDown, subsystem.Shutdown, subsystem.Good:
		case subsystem.Bad:
			bad++
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": bad == 0})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	states := s.reg.GetAll()
	out := make(map[string]string, len(states))
	for name, st := range states {
		out[name] = st.String()
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := codec.JSON.Marshal(v)
	if err != nil {
		http.Error(w, "encode failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.JSON.ContentType())
	w.WriteHeader(code)
	w.Write(b)
}
