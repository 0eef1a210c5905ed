package content

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T, now time.Time) (*Builder, string) {
	t.Helper()
	out := t.TempDir()
	b := NewBuilder(DefaultSites, out)
	b.Now = func() time.Time { return now }
	return b, out
}

func TestBuild(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	b, _ := newTestBuilder(t, now)

	folder := t.TempDir()
	touch(t, folder, "02.PNG", "01.jpg", "readme.md", "03.webp")

	values := validValues()
	values.ImageFolder = folder
	values.Favourite = true
	values.Completed = true

	doc, err := b.Build(values)
	require.NoError(t, err)

	require.Len(t, doc.ImageFiles, 3)
	assert.Equal(t, 3, doc.QtyPages)

	first := doc.ImageFiles[0]
	assert.Equal(t, 1, first.Order)
	assert.True(t, first.IsCover)
	assert.Equal(t, "01", first.Name)
	assert.Equal(t, "image/jpg", first.MimeType)
	assert.Equal(t, "https://dummyimage.com/1", first.Url)
	assert.Equal(t, -1, first.ChapterOrder)
	assert.Equal(t, StatusDownloaded, first.Status)

	assert.Equal(t, "image/png", doc.ImageFiles[1].MimeType)
	assert.False(t, doc.ImageFiles[1].IsCover)
	assert.False(t, doc.ImageFiles[2].IsCover)
	assert.Equal(t, 3, doc.ImageFiles[2].Order)

	assert.Equal(t, []AttributeEntry{
		{Name: "Jane-Doe", Type: Artist, Url: "/artist/jane-doe/"},
		{Name: "John-Smith", Type: Artist, Url: "/artist/john-smith/"},
	}, doc.Attributes.Artist)
	assert.Empty(t, doc.Attributes.Character)

	assert.Equal(t, now.UnixMilli(), doc.DownloadDate)
	assert.Equal(t, now.UnixMilli(), doc.DownloadCompletionDate)
	assert.Equal(t, now.UnixMilli(), doc.UploadDate)
	assert.Equal(t, PlaceholderUrl, doc.Url)
	assert.Equal(t, "https://dummyimage.com/1", doc.CoverImageUrl)
	assert.True(t, doc.Favourite)
	assert.True(t, doc.Completed)
	assert.Equal(t, 3, doc.Rating)
	assert.Equal(t, "NEXUS", doc.Site)
	assert.Equal(t, StatusDownloaded, doc.Status)
}

func TestBuildNameKeepsInnerDots(t *testing.T) {
	b, _ := newTestBuilder(t, time.Now())
	folder := t.TempDir()
	touch(t, folder, "vol.1.page.png")

	values := validValues()
	values.ImageFolder = folder

	doc, err := b.Build(values)
	require.NoError(t, err)
	assert.Equal(t, "vol.1.page", doc.ImageFiles[0].Name)
}

func TestBuildRejectsWhitespaceOnlyList(t *testing.T) {
	b, _ := newTestBuilder(t, time.Now())

	values := validValues()
	values.ImageFolder = t.TempDir()
	values.Language = "   "

	_, err := b.Build(values)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Language", verr.Field)
}

func TestCreateWritesDocument(t *testing.T) {
	b, out := newTestBuilder(t, time.UnixMilli(42))
	folder := t.TempDir()
	touch(t, folder, "a.png", "b.png")

	values := validValues()
	values.ImageFolder = folder

	path, err := b.Create(values)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, OutputFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"attributes\": {")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"attributes", "bookPreferences", "chapters", "completed", "coverImageUrl",
		"downloadCompletionDate", "downloadDate", "favourite", "groups", "imageFiles",
		"isFrozen", "lastReadDate", "lastReadPageIndex", "downloadMode", "errorRecords",
		"manuallyMerged", "qtyPages", "rating", "reads", "site", "status", "title",
		"uploadDate", "url",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 24)
	assert.Equal(t, float64(2), decoded["qtyPages"])
	assert.Equal(t, float64(42), decoded["uploadDate"])
}

func TestCreateKeyOrder(t *testing.T) {
	b, _ := newTestBuilder(t, time.UnixMilli(1))
	values := validValues()
	values.ImageFolder = t.TempDir()

	path, err := b.Create(values)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	keys := []string{`"attributes"`, `"bookPreferences"`, `"chapters"`, `"completed"`, `"coverImageUrl"`,
		`"downloadCompletionDate"`, `"downloadDate"`, `"favourite"`, `"groups"`, `"imageFiles"`,
		`"isFrozen"`, `"lastReadDate"`, `"lastReadPageIndex"`, `"downloadMode"`, `"errorRecords"`,
		`"manuallyMerged"`, `"qtyPages"`, `"rating"`, `"reads"`, `"site"`, `"status"`, `"title"`,
		`"uploadDate"`, `"url"`}
	last := -1
	for _, key := range keys {
		idx := bytes.Index(data, []byte("\n    "+key+":"))
		require.Greater(t, idx, last, key)
		last = idx
	}
}

func TestCreateEmptyFolder(t *testing.T) {
	b, _ := newTestBuilder(t, time.Now())
	values := validValues()
	values.ImageFolder = t.TempDir()

	path, err := b.Create(values)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc MetadataDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotNil(t, doc.ImageFiles)
	assert.Empty(t, doc.ImageFiles)
	assert.Equal(t, 0, doc.QtyPages)
	assert.Contains(t, string(data), `"imageFiles": []`)
	assert.Contains(t, string(data), `"CHARACTER": []`)
	assert.Contains(t, string(data), `"bookPreferences": {}`)
}

func TestCreateFailureLeavesExistingFile(t *testing.T) {
	b, out := newTestBuilder(t, time.Now())
	path := filepath.Join(out, OutputFileName)
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	values := validValues()
	values.ImageFolder = t.TempDir()
	values.Artist = ""

	_, err := b.Create(values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	values = validValues()
	values.ImageFolder = filepath.Join(out, "missing")
	_, err = b.Create(values)
	var perr *PathError
	require.ErrorAs(t, err, &perr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateUrlField(t *testing.T) {
	b, _ := newTestBuilder(t, time.Now())
	values := validValues()
	values.ImageFolder = t.TempDir()

	values.Url = "ftp://example.com"
	_, err := b.Create(values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "URL", verr.Field)

	values.Url = ""
	doc, err := b.Build(values)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderUrl, doc.Url)
}

func TestCreateIsReproducible(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "1.png", "2.jpg")
	values := validValues()
	values.ImageFolder = folder

	b, _ := newTestBuilder(t, time.UnixMilli(1000))
	path, err := b.Create(values)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	b.Now = func() time.Time { return time.UnixMilli(2000) }
	_, err = b.Create(values)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	stamp := func(data []byte) []byte {
		for _, key := range []string{"downloadCompletionDate", "downloadDate", "uploadDate"} {
			data = bytes.ReplaceAll(data, []byte(`"`+key+`": 1000`), []byte(`"`+key+`": 0`))
			data = bytes.ReplaceAll(data, []byte(`"`+key+`": 2000`), []byte(`"`+key+`": 0`))
		}
		return data
	}
	assert.Equal(t, string(stamp(first)), string(stamp(second)))
}
