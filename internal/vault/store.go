package vault

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

const (
	// VaultFileName holds the serialized record collection.
	VaultFileName = "vault.json"

	// MarkerFileName signals that the vault has been initialized.
	MarkerFileName = "vault_initialized.flag"

	fileMode = 0600
	dirMode  = 0700
)

// Entry is a uniquely named secret.
type Entry struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Store owns the record file inside a vault directory.
//
// Every mutation loads the whole collection, changes it in memory and
// rewrites the file. There is no locking: two processes writing the same
// vault concurrently can lose updates.
type Store struct {
	dir   string
	codec Codec
}

// NewStore returns a store for dir. A nil codec selects plaintext JSON.
func NewStore(dir string, codec Codec) *Store {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Store{dir: dir, codec: codec}
}

// Dir returns the vault directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the record file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, VaultFileName)
}

// Load reads the full collection. A missing file is an empty vault.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}

	entries, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.Path(), err)
	}
	return entries, nil
}

// Save replaces the record file with entries.
func (s *Store) Save(entries []Entry) error {
	data, err := s.codec.Encode(entries)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.Path(), data, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}

// Add appends a new entry and returns the stored password.
// It returns ErrDuplicateEntry without writing if name is already used.
func (s *Store) Add(name, password string) (string, error) {
	entries, err := s.Load()
	if err != nil {
		return "", err
	}

	if indexOf(entries, name) >= 0 {
		return "", fmt.Errorf("%q: %w", name, kerrors.ErrDuplicateEntry)
	}

	entries = append(entries, Entry{Name: name, Password: password})
	if err := s.Save(entries); err != nil {
		return "", err
	}
	return password, nil
}

// Find looks up an entry by exact, case-sensitive name.
func (s *Store) Find(name string) (Entry, bool, error) {
	entries, err := s.Load()
	if err != nil {
		return Entry{}, false, err
	}

	if i := indexOf(entries, name); i >= 0 {
		return entries[i], true, nil
	}
	return Entry{}, false, nil
}

// Get is Find for callers that prefer an error: a missing name returns an
// error wrapping ErrEntryNotFound.
func (s *Store) Get(name string) (Entry, error) {
	e, found, err := s.Find(name)
	if err != nil {
		return Entry{}, err
	}
	if !found {
		return Entry{}, fmt.Errorf("%q: %w", name, kerrors.ErrEntryNotFound)
	}
	return e, nil
}

// List returns entry names in storage order.
func (s *Store) List() ([]string, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// Delete removes the named entry. It reports false, without writing, when
// no entry matches.
func (s *Store) Delete(name string) (bool, error) {
	entries, err := s.Load()
	if err != nil {
		return false, err
	}

	i := indexOf(entries, name)
	if i < 0 {
		return false, nil
	}

	entries = append(entries[:i], entries[i+1:]...)
	if err := s.Save(entries); err != nil {
		return false, err
	}
	return true, nil
}

func indexOf(entries []Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
