package notion

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ParentType is the kind of Notion object a new entity is created under
type ParentType string

const (
	ParentTypePage     ParentType = "page"
	ParentTypeDatabase ParentType = "database"
)

// IsValid checks if the parent type is supported
func (x ParentType) IsValid() bool {
	return x == ParentTypePage || x == ParentTypeDatabase
}

// Parent is the selected page or database under which content is created
type Parent struct {
	ID    string     `json:"id"`
	Type  ParentType `json:"type"`
	Title string     `json:"title,omitempty"`

	// TitleProperty is the name of the title column when Type is database
	TitleProperty string `json:"title_property,omitempty"`
}

// OptionValue encodes the parent as a select option value
func (x *Parent) OptionValue() string {
	return string(x.Type) + ":" + x.ID
}

// ParseParentOption decodes a select option value produced by OptionValue
func ParseParentOption(value string) (*Parent, error) {
	kind, id, ok := strings.Cut(value, ":")
	if !ok || id == "" {
		return nil, goerr.New("malformed parent option", goerr.V("value", value))
	}

	parentType := ParentType(kind)
	if !parentType.IsValid() {
		return nil, goerr.New("unknown parent type", goerr.V("value", value))
	}

	return &Parent{ID: id, Type: parentType}, nil
}

// PageSummary is a page returned by the search endpoint
type PageSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// DatabaseSummary is a database returned by search or retrieve
type DatabaseSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	TitleProperty string `json:"title_property,omitempty"`
}

// CreatedEntity is the object returned after a database or page is created
type CreatedEntity struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}

// Candidates are the parent choices offered in one modal session
type Candidates struct {
	Pages     []*PageSummary     `json:"pages,omitempty"`
	Databases []*DatabaseSummary `json:"databases,omitempty"`
}

// Find resolves a parent selection against the candidates, filling its title
func (x *Candidates) Find(p *Parent) (*Parent, bool) {
	if x == nil || p == nil {
		return nil, false
	}

	switch p.Type {
	case ParentTypePage:
		for _, page := range x.Pages {
			if page.ID == p.ID {
				return &Parent{ID: page.ID, Type: ParentTypePage, Title: page.Title}, true
			}
		}
	case ParentTypeDatabase:
		for _, db := range x.Databases {
			if db.ID == p.ID {
				return &Parent{ID: db.ID, Type: ParentTypeDatabase, Title: db.Title, TitleProperty: db.TitleProperty}, true
			}
		}
	}

	return nil, false
}

// IsEmpty returns true if there is nothing to choose from
func (x *Candidates) IsEmpty() bool {
	return x == nil || (len(x.Pages) == 0 && len(x.Databases) == 0)
}
