package content

// PlaceholderUrl replaces an empty url and prefixes every image url.
const PlaceholderUrl = "https://dummyimage.com"

// RequiredUrlPrefix is the only scheme accepted for the url field.
const RequiredUrlPrefix = "https://"

// OutputFileName is the name of the written metadata file.
const OutputFileName = "contentV2.json"

const (
	MinRating = 0
	MaxRating = 5
)

// DefaultSites is the site dropdown used when no config overrides it.
// The first entry is preselected.
var DefaultSites = []string{"NEXUS", "ANCHIRA", "FAKKU", "EXHENTAI", "ExampleSite"}

type FormValues struct {
	Title       string
	Site        string
	Url         string
	Completed   bool
	Favourite   bool
	Rating      int
	Artist      string
	Language    string
	Tags        string
	ImageFolder string
}

// ResolvedUrl returns the url to write, substituting the placeholder for an empty one.
func (f FormValues) ResolvedUrl() string {
	if f.Url == "" {
		return PlaceholderUrl
	}
	return f.Url
}
