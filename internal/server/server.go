package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/preview"
	"github.com/rs/zerolog/log"
)

type Server struct {
	options Options

	mux  *http.ServeMux
	http *http.Server

	builder  *content.Builder
	previews *preview.Generator

	// state is only touched by handlers, which Serialize runs one at a time.
	state *FormState
	lock  sync.Mutex

	closeOnce sync.Once
	closing   chan struct{}
	closed    chan struct{}
}

func New(mux *http.ServeMux, options ...func(*Options)) *Server {
	opts := NewDefaultOptions()
	for _, apply := range options {
		apply(&opts)
	}

	s := Server{
		options:  opts,
		mux:      mux,
		builder:  content.NewBuilder(opts.Sites, opts.OutputDir),
		previews: preview.NewGenerator(opts.PreviewSize),
		state:    NewFormState(opts.Sites),
		closing:  make(chan struct{}),
		closed:   make(chan struct{}),
	}

	if opts.Store.Enabled {
		settings, err := opts.Store.Get().Settings()
		if err != nil {
			log.Error().Err(err).Msg("Could not load saved form defaults")
		} else {
			s.state.ApplySettings(settings, opts.Sites)
		}
	}

	if s.state.Values.ImageFolder != "" {
		s.refreshPreview()
	}

	s.mux.HandleFunc("GET /{$}", s.HandleForm)
	s.mux.HandleFunc("POST /folder", s.HandleFolder)
	s.mux.HandleFunc("GET /browse", s.HandleBrowse)
	s.mux.HandleFunc("GET /preview.png", s.HandlePreview)
	s.mux.HandleFunc("POST /create", s.HandleCreate)
	s.mux.HandleFunc("POST /exit", s.HandleExit)

	return &s
}

func (s *Server) Handler() http.Handler {
	return Log(s.Serialize(s.mux))
}

// Start serves the form until Close is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", s.options.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-s.closing
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.http.Shutdown(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Could not shut down server")
		}
		close(s.closed)
	}()

	log.Info().Str("Address", "http://"+s.http.Addr).Msg("Server starting")
	err := s.http.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-s.closed
	log.Info().Msg("Server stopped")
	return nil
}

// Close asks a running server to stop. It is safe to call more than once.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.closing)
	})
}
