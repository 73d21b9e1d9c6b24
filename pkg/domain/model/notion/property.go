package notion

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// PropertyType is a Notion database property type
type PropertyType string

const (
	PropertyTypeTitle       PropertyType = "title"
	PropertyTypeRichText    PropertyType = "rich_text"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeCheckbox    PropertyType = "checkbox"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeURL         PropertyType = "url"
	PropertyTypeEmail       PropertyType = "email"
	PropertyTypePhoneNumber PropertyType = "phone_number"
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multi_select"
)

// DefaultTitlePropertyName is used when a new database has no title column
const DefaultTitlePropertyName = "Name"

// PropertyDefinition is one user-defined column of a database being created.
// ID is a stable synthetic key for addressing the row in the modal.
type PropertyDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Type    PropertyType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// NewPropertyDefinition creates a definition with a fresh synthetic key
func NewPropertyDefinition(name string, propType PropertyType, options []string) PropertyDefinition {
	return PropertyDefinition{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Type:    propType,
		Options: options,
	}
}

// Validate checks the definition against a type catalog
func (x *PropertyDefinition) Validate(catalog *Catalog) error {
	if x.Name == "" {
		return goerr.New("property name is required", goerr.T(apperr.ErrTagRequiredField))
	}
	if utf8.RuneCountInString(x.Name) > 100 {
		return goerr.New("property name is too long", goerr.T(apperr.ErrTagValidation), goerr.V("name", x.Name))
	}

	t := catalog.Lookup(x.Type)
	if t == nil {
		return goerr.New("unknown property type", goerr.T(apperr.ErrTagValidation), goerr.V("type", x.Type))
	}
	if !t.Options && len(x.Options) > 0 {
		return goerr.New("property type does not take options", goerr.T(apperr.ErrTagValidation), goerr.V("type", x.Type))
	}

	return nil
}

// ParseOptions splits a comma separated option list, dropping blanks and duplicates
func ParseOptions(raw string) []string {
	var options []string
	seen := make(map[string]struct{})
	for _, opt := range strings.Split(raw, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if _, ok := seen[opt]; ok {
			continue
		}
		seen[opt] = struct{}{}
		options = append(options, opt)
	}
	return options
}

// SameName compares property names the way Notion does (case-insensitive)
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// WithTitleProperty returns the definitions of a new database, adding a
// title column in front when none was defined. Notion requires exactly one.
func WithTitleProperty(props []PropertyDefinition) []PropertyDefinition {
	for _, p := range props {
		if p.Type == PropertyTypeTitle {
			return props
		}
	}

	title := NewPropertyDefinition(titlePropertyName(props), PropertyTypeTitle, nil)
	return append([]PropertyDefinition{title}, props...)
}

// titlePropertyName picks a title column name no user property has:
// Name, Title, Title 2, Title 3 and so on.
func titlePropertyName(props []PropertyDefinition) string {
	taken := func(name string) bool {
		for _, p := range props {
			if SameName(p.Name, name) {
				return true
			}
		}
		return false
	}

	if !taken(DefaultTitlePropertyName) {
		return DefaultTitlePropertyName
	}
	if !taken("Title") {
		return "Title"
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("Title %d", i)
		if !taken(name) {
			return name
		}
	}
}
