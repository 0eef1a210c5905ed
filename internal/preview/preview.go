package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/utils"
	"github.com/rs/zerolog/log"

	_ "golang.org/x/image/webp"
)

const DefaultSize = 200

// DecodeError means the folder was scanned but its first image could not
// be turned into a thumbnail.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not load preview of %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Result struct {
	PageCount int
	// Cover is the path of the first image, empty for a folder without images.
	Cover     string
	Thumbnail []byte
}

type cacheKey struct {
	path    string
	modTime time.Time
	size    int64
}

type Generator struct {
	size  int
	cache utils.ConcurrentMap[cacheKey, []byte]
}

func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Generator{
		size:  size,
		cache: utils.NewConcurrentMap[cacheKey, []byte](),
	}
}

// Thumbnail decodes the image at path and scales it down to fit into a
// size x size box, keeping the aspect ratio. Smaller images are not enlarged.
func Thumbnail(path string, size int) ([]byte, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	thumb := imaging.Fit(img, size, size, imaging.Lanczos)

	buf := new(bytes.Buffer)
	err = imaging.Encode(buf, thumb, imaging.PNG)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load rescans folder and builds the thumbnail of its first image.
// A *content.PathError is returned for an invalid folder. On a *DecodeError
// the returned Result still carries the page count.
func (g *Generator) Load(folder string) (Result, error) {
	images, err := content.ScanFolder(folder)
	if err != nil {
		return Result{}, err
	}

	result := Result{PageCount: len(images)}
	if len(images) == 0 {
		return result, nil
	}

	result.Cover = filepath.Join(folder, images[0])
	info, err := os.Stat(result.Cover)
	if err != nil {
		return result, &DecodeError{Path: result.Cover, Err: err}
	}

	key := cacheKey{path: result.Cover, modTime: info.ModTime(), size: info.Size()}
	if thumb, ok := g.cache.Get(key); ok {
		log.Debug().Str("Path", result.Cover).Msg("Preview cache hit")
		result.Thumbnail = thumb
		return result, nil
	}

	thumb, err := Thumbnail(result.Cover, g.size)
	if err != nil {
		return result, &DecodeError{Path: result.Cover, Err: err}
	}

	// Older versions of the same file are stale.
	g.cache.DeleteFunc(func(k cacheKey, _ []byte) bool {
		return k.path == key.path
	})
	g.cache.Set(key, thumb)
	result.Thumbnail = thumb
	return result, nil
}
