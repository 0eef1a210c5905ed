package server

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/preview"
	"github.com/pablu23/contentForm/internal/view"
	"github.com/rs/zerolog/log"
)

const invalidFolderMessage = "Please select a valid folder for image files."

func render(w http.ResponseWriter, v view.View, data any) {
	tmpl, err := view.GetViewTemplate(v)
	if err != nil {
		log.Error().Err(err).Int("View", int(v)).Msg("Could not load template")
		http.Error(w, "could not load template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = tmpl.Execute(w, data)
	if err != nil {
		log.Error().Err(err).Int("View", int(v)).Msg("Could not execute template")
	}
}

func parseFormValues(r *http.Request) content.FormValues {
	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		rating = -1
	}

	return content.FormValues{
		Title:       r.PostFormValue("title"),
		Site:        r.PostFormValue("site"),
		Url:         r.PostFormValue("url"),
		Completed:   r.PostFormValue("completed") != "",
		Favourite:   r.PostFormValue("favourite") != "",
		Rating:      rating,
		Artist:      r.PostFormValue("artist"),
		Language:    r.PostFormValue("language"),
		Tags:        r.PostFormValue("tags"),
		ImageFolder: strings.TrimSpace(r.PostFormValue("imageFolder")),
	}
}

func (s *Server) HandleForm(w http.ResponseWriter, _ *http.Request) {
	render(w, view.Form, s.state.ViewModel(s.options.Sites))
	s.state.ClearMessages()
}

// HandleFolder takes the folder change event. The whole form is posted so
// nothing typed so far is lost, except from the folder browser which only
// sends the folder.
func (s *Server) HandleFolder(w http.ResponseWriter, r *http.Request) {
	if r.PostFormValue("only") == "folder" {
		s.state.Values.ImageFolder = strings.TrimSpace(r.PostFormValue("imageFolder"))
	} else {
		s.state.Values = parseFormValues(r)
	}

	if r.PostFormValue("action") == "browse" {
		http.Redirect(w, r, "/browse?dir="+url.QueryEscape(s.state.Values.ImageFolder), http.StatusSeeOther)
		return
	}

	s.refreshPreview()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) refreshPreview() {
	folder := s.state.Values.ImageFolder
	result, err := s.previews.Load(folder)

	var pathErr *content.PathError
	var decodeErr *preview.DecodeError
	switch {
	case errors.As(err, &pathErr):
		log.Debug().Str("Folder", folder).Msg("Not a folder, preview unchanged")
		return
	case errors.As(err, &decodeErr):
		// The previous thumbnail stays on screen.
		log.Warn().Err(decodeErr.Err).Str("Path", decodeErr.Path).Msg("Could not load preview")
		s.state.Warning = decodeErr.Error()
	case err != nil:
		log.Error().Err(err).Str("Folder", folder).Msg("Could not scan folder")
		return
	case result.PageCount == 0:
		s.state.Thumbnail = nil
	default:
		s.state.Thumbnail = result.Thumbnail
		s.state.PreviewVersion++
	}

	s.state.Scanned = true
	s.state.PageCount = result.PageCount
	log.Debug().Str("Folder", folder).Int("Pages", result.PageCount).Msg("Scanned folder")
}

func (s *Server) HandlePreview(w http.ResponseWriter, r *http.Request) {
	if len(s.state.Thumbnail) == 0 {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, err := w.Write(s.state.Thumbnail)
	if err != nil {
		log.Error().Err(err).Msg("Could not write preview")
	}
}

func (s *Server) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	dir := r.URL.Query().Get("dir")
	if dir == "" {
		dir = s.state.Values.ImageFolder
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Error().Err(err).Msg("Could not get working directory")
			http.Error(w, "could not get working directory", http.StatusInternalServerError)
			return
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	viewModel := view.BrowseViewModel{Dir: abs}
	if parent := filepath.Dir(abs); parent != abs {
		viewModel.Parent = parent
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		log.Debug().Err(err).Str("Dir", abs).Msg("Could not list directory")
		viewModel.Error = err.Error()
		render(w, view.Browse, viewModel)
		return
	}

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		viewModel.Entries = append(viewModel.Entries, view.DirEntry{
			Name: e.Name(),
			Path: filepath.Join(abs, e.Name()),
		})
	}

	images, err := content.ScanFolder(abs)
	if err == nil {
		viewModel.Images = len(images)
	}

	render(w, view.Browse, viewModel)
}

func (s *Server) HandleCreate(w http.ResponseWriter, r *http.Request) {
	s.state.Values = parseFormValues(r)

	path, err := s.builder.Create(s.state.Values)
	if err != nil {
		var validationErr *content.ValidationError
		var pathErr *content.PathError
		switch {
		case errors.As(err, &validationErr):
			log.Info().Str("Field", validationErr.Field).Msg(validationErr.Message)
			s.state.Error = validationErr.Message
		case errors.As(err, &pathErr):
			log.Info().Err(err).Msg("Invalid image folder")
			s.state.Error = invalidFolderMessage
		default:
			log.Error().Err(err).Msg("Could not create contentV2.json")
			s.state.Error = err.Error()
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	log.Info().Str("Path", path).Msg("Created contentV2.json")
	s.state.Notice = "File created! Saved as: " + path

	if s.options.Store.Enabled {
		err = s.options.Store.Get().SaveSettings(s.state.Settings())
		if err != nil {
			log.Error().Err(err).Msg("Could not save form defaults")
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) HandleExit(w http.ResponseWriter, _ *http.Request) {
	log.Info().Msg("Exit requested")
	render(w, view.Closed, "contentV2 form closed, you can close this tab.")
	s.Close()
}
