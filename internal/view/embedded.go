//go:build !Develop

package view

import (
	_ "embed"
	"errors"
	"html/template"
)

//go:embed Views/form.gohtml
var form string

//go:embed Views/browse.gohtml
var browse string

//go:embed Views/closed.gohtml
var closed string

func GetViewTemplate(view View) (*template.Template, error) {
	switch view {
	case Form:
		return template.New("form").Parse(form)
	case Browse:
		return template.New("browse").Parse(browse)
	case Closed:
		return template.New("closed").Parse(closed)
	}
	return nil, errors.New("invalid view")
}
