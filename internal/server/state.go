package server

import (
	"slices"
	"strconv"

	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/view"
)

const (
	settingSite     = "site"
	settingFolder   = "imageFolder"
	settingLanguage = "language"
)

// FormState is everything the form currently shows.
type FormState struct {
	Values content.FormValues

	Scanned        bool
	PageCount      int
	Thumbnail      []byte
	PreviewVersion int

	Notice  string
	Warning string
	Error   string
}

func NewFormState(sites []string) *FormState {
	state := &FormState{}
	if len(sites) > 0 {
		state.Values.Site = sites[0]
	}
	return state
}

func (f *FormState) ApplySettings(settings map[string]string, sites []string) {
	if site, ok := settings[settingSite]; ok && slices.Contains(sites, site) {
		f.Values.Site = site
	}
	if folder, ok := settings[settingFolder]; ok {
		f.Values.ImageFolder = folder
	}
	if language, ok := settings[settingLanguage]; ok {
		f.Values.Language = language
	}
}

func (f *FormState) Settings() map[string]string {
	return map[string]string{
		settingSite:     f.Values.Site,
		settingFolder:   f.Values.ImageFolder,
		settingLanguage: f.Values.Language,
	}
}

func (f *FormState) ClearMessages() {
	f.Notice = ""
	f.Warning = ""
	f.Error = ""
}

func (f *FormState) ViewModel(sites []string) view.FormViewModel {
	options := make([]view.SiteOption, len(sites))
	for i, site := range sites {
		options[i] = view.SiteOption{Name: site, Selected: site == f.Values.Site}
	}

	pageCount := ""
	if f.Scanned {
		pageCount = strconv.Itoa(f.PageCount)
	}

	return view.FormViewModel{
		Title:          f.Values.Title,
		Sites:          options,
		Url:            f.Values.Url,
		Completed:      f.Values.Completed,
		Favourite:      f.Values.Favourite,
		Rating:         f.Values.Rating,
		Artist:         f.Values.Artist,
		Language:       f.Values.Language,
		Tags:           f.Values.Tags,
		ImageFolder:    f.Values.ImageFolder,
		PageCount:      pageCount,
		HasPreview:     len(f.Thumbnail) > 0,
		PreviewVersion: f.PreviewVersion,
		Notice:         f.Notice,
		Warning:        f.Warning,
		Error:          f.Error,
	}
}
