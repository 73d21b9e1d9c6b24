package notion

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed templates/property_types.yaml
var defaultCatalog []byte

// CatalogEntry describes one property type selectable in the modal
type CatalogEntry struct {
	Type    PropertyType `yaml:"type"`
	Label   string       `yaml:"label"`
	Options bool         `yaml:"options,omitempty"`
}

// Catalog is the ordered list of selectable property types
type Catalog struct {
	Types []*CatalogEntry `yaml:"types"`
}

var knownTypes = map[PropertyType]struct{}{
	PropertyTypeTitle:       {},
	PropertyTypeRichText:    {},
	PropertyTypeNumber:      {},
	PropertyTypeCheckbox:    {},
	PropertyTypeDate:        {},
	PropertyTypeURL:         {},
	PropertyTypeEmail:       {},
	PropertyTypePhoneNumber: {},
	PropertyTypeSelect:      {},
	PropertyTypeMultiSelect: {},
}

// DefaultCatalogYAML returns the embedded catalog template
func DefaultCatalogYAML() []byte {
	return defaultCatalog
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic("embedded property type catalog is broken: " + err.Error())
	}
	return catalog
}

// LoadCatalog reads a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from operator configuration
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read property type catalog", goerr.V("path", path))
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid property type catalog", goerr.V("path", path))
	}
	return catalog, nil
}

// ParseCatalog parses and validates catalog YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse property type catalog")
	}

	if len(catalog.Types) == 0 {
		return nil, goerr.New("property type catalog is empty")
	}

	seen := make(map[PropertyType]struct{})
	for _, entry := range catalog.Types {
		if _, ok := knownTypes[entry.Type]; !ok {
			return nil, goerr.New("unsupported property type in catalog", goerr.V("type", entry.Type))
		}
		if _, ok := seen[entry.Type]; ok {
			return nil, goerr.New("duplicated property type in catalog", goerr.V("type", entry.Type))
		}
		seen[entry.Type] = struct{}{}

		if entry.Label == "" {
			entry.Label = string(entry.Type)
		}
		if entry.Options && entry.Type != PropertyTypeSelect && entry.Type != PropertyTypeMultiSelect {
			return nil, goerr.New("only select types can take options", goerr.V("type", entry.Type))
		}
	}

	return &catalog, nil
}

// Lookup returns the entry for a type, or nil if the type is not offered
func (x *Catalog) Lookup(t PropertyType) *CatalogEntry {
	if x == nil {
		return nil
	}
	for _, entry := range x.Types {
		if entry.Type == t {
			return entry
		}
	}
	return nil
}
