package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Serialize runs one handler at a time, so the form state behaves like a
// single event loop.
func (s *Server) Serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()
		next.ServeHTTP(w, r)
	})
}

func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("Method", r.Method).
			Str("Path", r.URL.Path).
			Dur("Duration", time.Since(start)).
			Msg("Handled request")
	})
}
