package ledger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var shardPattern = regexp.MustCompile(`^(\d{4})_transactions\.csv$`)

// Store locates the CSV shards for one account / piggy bank pair.
type Store struct {
	dir string
}

// NewStore binds a store to <dataDir>/<account>/piggy_banks/<piggyBank>/csv.
func NewStore(dataDir, account, piggyBank string) *Store {
	return &Store{dir: filepath.Join(dataDir, account, "piggy_banks", piggyBank, "csv")}
}

// NewStoreAt binds a store directly to a shard directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the shard directory.
func (s *Store) Dir() string {
	return s.dir
}

// Years scans the store directory and maps each shard year to its file path.
// A missing directory means no shards, not an error.
func (s *Store) Years() (map[int]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning %s: %w", s.dir, err)
	}

	years := make(map[int]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := shardPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		years[year] = filepath.Join(s.dir, e.Name())
	}
	return years, nil
}

// Path returns the shard path for a year, creating the shard directory.
func (s *Store) Path(year int) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", s.dir, err)
	}
	return filepath.Join(s.dir, fmt.Sprintf("%d_transactions.csv", year)), nil
}

// JSONPath returns the JSON export path for a year, in the json folder
// next to the csv folder, creating it if needed.
func (s *Store) JSONPath(year int) (string, error) {
	dir := filepath.Join(filepath.Dir(s.dir), "json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("%d_transactions.json", year)), nil
}

// WriteAtomic writes a file via a temp file and rename, so a failed write
// leaves any existing shard untouched.
func (s *Store) WriteAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shard-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrIO, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", ErrIO, path, err)
	}
	return nil
}
