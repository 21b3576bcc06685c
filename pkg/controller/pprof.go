package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// MountPprof registers the net/http/pprof handlers on mux under prefix, e.g.
// "/debug/pprof/". Named profiles (heap, goroutine, ...) are served by the index.
func MountPprof(mux *http.ServeMux, prefix string) {
	prefix = strings.TrimSuffix(prefix, "/")

	mux.Handle(prefix+"/", http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// pprof.Index resolves profile names relative to /debug/pprof/.
		r.URL.Path = "/debug/pprof" + r.URL.Path
		pprof.Index(w, r)
	})))
	mux.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"/profile", pprof.Profile)
	mux.HandleFunc(prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"/trace", pprof.Trace)
}
