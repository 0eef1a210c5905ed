package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const indent = "    "

func Encode(w io.Writer, doc *MetadataDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteDocument serialises doc in full before replacing path, so a failed
// write leaves an existing file untouched.
func WriteDocument(doc *MetadataDocument, path string) error {
	buf := new(bytes.Buffer)
	err := Encode(buf, doc)
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".contentV2-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath)
	}()

	_, err = tmp.Write(buf.Bytes())
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write %s: %w", tmpPath, err)
	}
	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("could not write %s: %w", tmpPath, err)
	}

	err = os.Chmod(tmpPath, 0o644)
	if err != nil {
		return err
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}
