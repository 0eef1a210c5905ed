package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type AttributeType string

const (
	Artist    AttributeType = "ARTIST"
	Language  AttributeType = "LANGUAGE"
	Tag       AttributeType = "TAG"
	Character AttributeType = "CHARACTER"
	Serie     AttributeType = "SERIE"
	Category  AttributeType = "CATEGORY"
)

type AttributeEntry struct {
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
	Url  string        `json:"url"`
}

// Attributes keeps the groups in the order they are serialised.
type Attributes struct {
	Artist    []AttributeEntry `json:"ARTIST"`
	Language  []AttributeEntry `json:"LANGUAGE"`
	Tag       []AttributeEntry `json:"TAG"`
	Character []AttributeEntry `json:"CHARACTER"`
	Serie     []AttributeEntry `json:"SERIE"`
	Category  []AttributeEntry `json:"CATEGORY"`
}

func hyphenate(s string) string {
	return strings.ReplaceAll(s, " ", "-")
}

// BuildAttributes splits a comma separated field into entries of type t,
// keeping the input order. Blank pieces are dropped.
func BuildAttributes(raw string, t AttributeType) []AttributeEntry {
	lower := cases.Lower(language.Und)
	segment := strings.ToLower(string(t))

	entries := make([]AttributeEntry, 0)
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		var name, slug string
		switch t {
		case Artist:
			name = hyphenate(piece)
			slug = lower.String(name)
		case Language:
			name = piece
			slug = lower.String(piece)
		default:
			name = piece
			slug = lower.String(hyphenate(piece))
		}

		entries = append(entries, AttributeEntry{
			Name: name,
			Type: t,
			Url:  "/" + segment + "/" + slug + "/",
		})
	}
	return entries
}
