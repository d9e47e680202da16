package tree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"rakta/internal/fs"
)

const (
	jsonIndent = "  "
	filePerms  = 0o600
)

// Load reads the document at path. A missing file is a recoverable
// condition: Load returns an empty document and created=true so the caller
// can report that a new file will be written. Any other read or parse
// failure is fatal.
func Load(fsys fs.FS, path string) (Document, bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{People: []Person{}}, true, nil
		}

		return Document{}, false, fmt.Errorf("reading tree file: %w", err)
	}

	doc, parseErr := parseDocument(data)
	if parseErr != nil {
		return Document{}, false, fmt.Errorf("%w %s: %w", errTreeInvalid, path, parseErr)
	}

	return doc, false, nil
}

// parseDocument decodes the tree file. JSONC is standardized first so
// hand-edited trees may carry comments and trailing commas.
func parseDocument(data []byte) (Document, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Document{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var doc Document

	unmarshalErr := json.Unmarshal(standardized, &doc)
	if unmarshalErr != nil {
		return Document{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	if doc.People == nil {
		doc.People = []Person{}
	}

	return doc, nil
}

// Save serializes the full document as pretty-printed JSON (2-space indent)
// and writes it atomically, overwriting the previous contents. Last writer
// wins; there is no merge and no lock file.
func Save(fsys fs.FS, path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}

	data = append(data, '\n')

	writeErr := fsys.WriteFileAtomic(path, data, filePerms)
	if writeErr != nil {
		return fmt.Errorf("saving tree file: %w", writeErr)
	}

	return nil
}
