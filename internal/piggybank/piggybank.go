// Package piggybank manages the sub-account directories of one account.
// Each piggy bank holds a csv folder of year shards and a json folder of
// exports.
package piggybank

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var nameRE = regexp.MustCompile(`^[\w-]+$`)

// Service manages the piggy banks under <dataDir>/<account>/piggy_banks.
type Service struct {
	account string
	baseDir string
}

// NewService binds a service to one account's piggy bank directory.
func NewService(dataDir, account string) *Service {
	return &Service{
		account: account,
		baseDir: filepath.Join(dataDir, account, "piggy_banks"),
	}
}

// Info describes one piggy bank.
type Info struct {
	Name     string `json:"name"`
	Account  string `json:"account"`
	Path     string `json:"path"`
	CSVPath  string `json:"csv_path"`
	JSONPath string `json:"json_path"`
}

// List returns the names of all piggy banks for the account.
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading piggy bank dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Create makes a new piggy bank with its csv and json folders.
func (s *Service) Create(name string) (Info, error) {
	if !nameRE.MatchString(name) {
		return Info{}, fmt.Errorf("invalid piggy bank name %q: use only letters, digits, hyphens, underscores", name)
	}

	dir := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(dir); err == nil {
		return Info{}, fmt.Errorf("piggy bank %q already exists", name)
	}

	for _, sub := range []string{"csv", "json"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return Info{}, fmt.Errorf("creating piggy bank %s dir: %w", sub, err)
		}
	}

	return s.info(name), nil
}

// Get returns details for one piggy bank, or false if it does not exist.
func (s *Service) Get(name string) (Info, bool) {
	dir := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(dir); err != nil {
		return Info{}, false
	}
	return s.info(name), true
}

// Delete removes a piggy bank. With purge, all of its data is deleted;
// otherwise the directory is left in place and only reported as removed.
func (s *Service) Delete(name string, purge bool) error {
	dir := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("piggy bank %q not found", name)
	}
	if purge {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing piggy bank data: %w", err)
		}
	}
	return nil
}

func (s *Service) info(name string) Info {
	dir := filepath.Join(s.baseDir, name)
	return Info{
		Name:     name,
		Account:  s.account,
		Path:     dir,
		CSVPath:  filepath.Join(dir, "csv"),
		JSONPath: filepath.Join(dir, "json"),
	}
}
