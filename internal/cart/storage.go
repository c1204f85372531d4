package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// FileStorage persists cart lines as JSON on disk, the desktop analog of
// the browser's local storage.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *FileStorage) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}
