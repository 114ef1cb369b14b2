package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one <slot>.json file per slot under a data directory.
// Saves go through a temp file and os.Rename, so a crash mid-write leaves
// the previous snapshot intact. SaveAll is sequential, not atomic across
// slots; use BunStore when the multi-slot commit must be all-or-nothing.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(slot string) string {
	return filepath.Join(f.Dir, slot+".json")
}

func (f *FileStore) Load(slot string) ([]byte, error) {
	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return data, nil
}

func (f *FileStore) Save(slot string, data []byte) error {
	tmp, err := os.CreateTemp(f.Dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), f.path(slot)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

func (f *FileStore) SaveAll(snapshots map[string][]byte) error {
	for slot, data := range snapshots {
		if err := f.Save(slot, data); err != nil {
			return err
		}
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
