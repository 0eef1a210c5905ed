package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const StatusDownloaded = "DOWNLOADED"

type ImageFileRecord struct {
	ChapterOrder  int    `json:"chapterOrder"`
	Favourite     bool   `json:"favourite"`
	IsCover       bool   `json:"isCover"`
	IsRead        bool   `json:"isRead"`
	IsTransformed bool   `json:"isTransformed"`
	MimeType      string `json:"mimeType"`
	Name          string `json:"name"`
	Order         int    `json:"order"`
	PHash         int64  `json:"pHash"`
	PageUrl       string `json:"pageUrl"`
	Status        string `json:"status"`
	Url           string `json:"url"`
}

// MetadataDocument is the contentV2.json schema. Field order is the
// serialisation order.
type MetadataDocument struct {
	Attributes             Attributes        `json:"attributes"`
	BookPreferences        map[string]string `json:"bookPreferences"`
	Chapters               []any             `json:"chapters"`
	Completed              bool              `json:"completed"`
	CoverImageUrl          string            `json:"coverImageUrl"`
	DownloadCompletionDate int64             `json:"downloadCompletionDate"`
	DownloadDate           int64             `json:"downloadDate"`
	Favourite              bool              `json:"favourite"`
	Groups                 []any             `json:"groups"`
	ImageFiles             []ImageFileRecord `json:"imageFiles"`
	IsFrozen               bool              `json:"isFrozen"`
	LastReadDate           int64             `json:"lastReadDate"`
	LastReadPageIndex      int               `json:"lastReadPageIndex"`
	DownloadMode           int               `json:"downloadMode"`
	ErrorRecords           []any             `json:"errorRecords"`
	ManuallyMerged         bool              `json:"manuallyMerged"`
	QtyPages               int               `json:"qtyPages"`
	Rating                 int               `json:"rating"`
	Reads                  int               `json:"reads"`
	Site                   string            `json:"site"`
	Status                 string            `json:"status"`
	Title                  string            `json:"title"`
	UploadDate             int64             `json:"uploadDate"`
	Url                    string            `json:"url"`
}

func MimeType(filename string) string {
	return "image/" + strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func BuildImageRecords(filenames []string) []ImageFileRecord {
	records := make([]ImageFileRecord, 0, len(filenames))
	for i, filename := range filenames {
		order := i + 1
		records = append(records, ImageFileRecord{
			ChapterOrder: -1,
			IsCover:      order == 1,
			MimeType:     MimeType(filename),
			Name:         strings.TrimSuffix(filename, filepath.Ext(filename)),
			Order:        order,
			Status:       StatusDownloaded,
			Url:          fmt.Sprintf("%s/%d", PlaceholderUrl, order),
		})
	}
	return records
}

type Builder struct {
	Validator *Validator
	// OutputDir is where contentV2.json is written, the working directory if empty.
	OutputDir string
	Now       func() time.Time
}

func NewBuilder(sites []string, outputDir string) *Builder {
	return &Builder{
		Validator: NewValidator(sites),
		OutputDir: outputDir,
		Now:       time.Now,
	}
}

// Build validates values, scans the image folder and assembles the document.
func (b *Builder) Build(values FormValues) (*MetadataDocument, error) {
	err := b.Validator.Validate(values)
	if err != nil {
		return nil, err
	}

	attributes := Attributes{
		Artist:    BuildAttributes(values.Artist, Artist),
		Language:  BuildAttributes(values.Language, Language),
		Tag:       BuildAttributes(values.Tags, Tag),
		Character: []AttributeEntry{},
		Serie:     []AttributeEntry{},
		Category:  []AttributeEntry{},
	}
	groups := []struct {
		field   string
		entries []AttributeEntry
	}{
		{"Artist", attributes.Artist},
		{"Language", attributes.Language},
		{"Tags", attributes.Tag},
	}
	for _, g := range groups {
		if len(g.entries) == 0 {
			return nil, &ValidationError{Field: g.field, Message: fmt.Sprintf("%s field cannot be blank.", g.field)}
		}
	}

	images, err := ScanFolder(values.ImageFolder)
	if err != nil {
		return nil, err
	}

	now := b.Now().UnixMilli()
	records := BuildImageRecords(images)

	return &MetadataDocument{
		Attributes:             attributes,
		BookPreferences:        map[string]string{},
		Chapters:               []any{},
		Completed:              values.Completed,
		CoverImageUrl:          PlaceholderUrl + "/1",
		DownloadCompletionDate: now,
		DownloadDate:           now,
		Favourite:              values.Favourite,
		Groups:                 []any{},
		ImageFiles:             records,
		ErrorRecords:           []any{},
		QtyPages:               len(records),
		Rating:                 values.Rating,
		Site:                   values.Site,
		Status:                 StatusDownloaded,
		Title:                  values.Title,
		UploadDate:             now,
		Url:                    values.ResolvedUrl(),
	}, nil
}

// Create builds the document and writes it, returning the absolute path of
// the written file. Nothing is written when building fails.
func (b *Builder) Create(values FormValues) (string, error) {
	doc, err := b.Build(values)
	if err != nil {
		return "", err
	}

	dir := b.OutputDir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not resolve working directory: %w", err)
		}
	}

	path, err := filepath.Abs(filepath.Join(dir, OutputFileName))
	if err != nil {
		return "", err
	}

	err = WriteDocument(doc, path)
	if err != nil {
		return "", err
	}
	return path, nil
}
