// Package accounts manages the account registry stored at the data root.
package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

const registryFile = "accounts.json"

var nameRE = regexp.MustCompile(`^[\w-]+$`)

// Service provides lookup and mutation over the registered accounts.
type Service struct {
	dataDir string
}

// NewService binds a service to the data root directory.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Info describes a registered account.
type Info struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Names returns all registered account names. A missing registry file means
// no accounts, not an error.
func (s *Service) Names() ([]string, error) {
	data, err := os.ReadFile(s.registryPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading account registry: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing account registry: %w", err)
	}
	return names, nil
}

// Create registers a new account and creates its directory.
func (s *Service) Create(name string) (Info, error) {
	if !nameRE.MatchString(name) {
		return Info{}, fmt.Errorf("invalid account name %q: use only letters, digits, hyphens, underscores", name)
	}

	names, err := s.Names()
	if err != nil {
		return Info{}, err
	}
	if slices.Contains(names, name) {
		return Info{}, fmt.Errorf("account %q already exists", name)
	}

	if err := s.save(append(names, name)); err != nil {
		return Info{}, err
	}

	dir := s.accountDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Info{}, fmt.Errorf("creating account dir: %w", err)
	}

	return Info{Name: name, Path: dir, Exists: true}, nil
}

// Get returns details for one account, or false if it is not registered.
func (s *Service) Get(name string) (Info, bool, error) {
	names, err := s.Names()
	if err != nil {
		return Info{}, false, err
	}
	if !slices.Contains(names, name) {
		return Info{}, false, nil
	}
	dir := s.accountDir(name)
	_, statErr := os.Stat(dir)
	return Info{Name: name, Path: dir, Exists: statErr == nil}, true, nil
}

// List returns details for all registered accounts.
func (s *Service) List() ([]Info, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		dir := s.accountDir(name)
		_, statErr := os.Stat(dir)
		infos = append(infos, Info{Name: name, Path: dir, Exists: statErr == nil})
	}
	return infos, nil
}

// Delete unregisters an account. With purge, its data directory is removed
// as well; otherwise the files stay on disk.
func (s *Service) Delete(name string, purge bool) error {
	names, err := s.Names()
	if err != nil {
		return err
	}
	idx := slices.Index(names, name)
	if idx < 0 {
		return fmt.Errorf("account %q not found", name)
	}

	if err := s.save(slices.Delete(names, idx, idx+1)); err != nil {
		return err
	}

	if purge {
		if err := os.RemoveAll(s.accountDir(name)); err != nil {
			return fmt.Errorf("removing account data: %w", err)
		}
	}
	return nil
}

func (s *Service) save(names []string) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling account registry: %w", err)
	}
	if err := os.WriteFile(s.registryPath(), data, 0o644); err != nil {
		return fmt.Errorf("writing account registry: %w", err)
	}
	return nil
}

func (s *Service) registryPath() string {
	return filepath.Join(s.dataDir, registryFile)
}

func (s *Service) accountDir(name string) string {
	return filepath.Join(s.dataDir, name)
}
