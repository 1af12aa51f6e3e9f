// Package category keeps the registry of known category names. The ledger
// itself never checks category membership; only the CLI surface consults
// this registry when adding transactions.
package category

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Registry is the set of known category names, persisted as categories.yaml
// at the data root.
type Registry struct {
	Categories []string `yaml:"categories"`
}

// Default returns the registry seeded on init.
func Default() *Registry {
	return &Registry{
		Categories: []string{
			"Salary",
			"Food",
			"Transport",
			"Housing",
			"Utilities",
			"Entertainment",
			"Health",
			"Savings",
		},
	}
}

// Load reads a categories.yaml file. A missing file yields the default set.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	return &reg, nil
}

// Save writes the registry to a YAML file.
func Save(path string, reg *Registry) error {
	data, err := yaml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// Has reports whether name is a known category (exact match).
func (r *Registry) Has(name string) bool {
	return slices.Contains(r.Categories, name)
}

// Add appends a new category name.
func (r *Registry) Add(name string) error {
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if r.Has(name) {
		return fmt.Errorf("category %q already exists", name)
	}
	r.Categories = append(r.Categories, name)
	return nil
}

// Rename replaces an existing category name.
func (r *Registry) Rename(oldName, newName string) error {
	idx := slices.Index(r.Categories, oldName)
	if idx < 0 {
		return fmt.Errorf("category %q not found", oldName)
	}
	if newName == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if r.Has(newName) {
		return fmt.Errorf("category %q already exists", newName)
	}
	r.Categories[idx] = newName
	return nil
}

// Remove deletes a category name.
func (r *Registry) Remove(name string) error {
	idx := slices.Index(r.Categories, name)
	if idx < 0 {
		return fmt.Errorf("category %q not found", name)
	}
	r.Categories = slices.Delete(r.Categories, idx, idx+1)
	return nil
}
