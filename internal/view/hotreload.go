//go:build Develop

package view

import (
	"errors"
	"html/template"
)

func GetViewTemplate(view View) (*template.Template, error) {
	var path string
	switch view {
	case Form:
		path = "internal/view/Views/form.gohtml"
	case Browse:
		path = "internal/view/Views/browse.gohtml"
	case Closed:
		path = "internal/view/Views/closed.gohtml"
	default:
		return nil, errors.New("invalid view")
	}
	return template.ParseFiles(path)
}
