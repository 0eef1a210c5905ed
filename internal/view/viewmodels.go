package view

type View int

const (
	Form View = iota
	Browse
	Closed
)

type SiteOption struct {
	Name     string
	Selected bool
}

type FormViewModel struct {
	Title       string
	Sites       []SiteOption
	Url         string
	Completed   bool
	Favourite   bool
	Rating      int
	Artist      string
	Language    string
	Tags        string
	ImageFolder string

	// PageCount is empty until a folder was scanned.
	PageCount  string
	HasPreview bool
	// PreviewVersion busts the browser cache of /preview.png.
	PreviewVersion int

	Notice  string
	Warning string
	Error   string
}

type DirEntry struct {
	Name string
	Path string
}

type BrowseViewModel struct {
	Dir     string
	Parent  string
	Entries []DirEntry
	Images  int
	Error   string
}
