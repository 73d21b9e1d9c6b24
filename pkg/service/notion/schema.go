package notion

import (
	"strings"

	model "github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

// Wire types of the Notion API. Only fields used here are decoded.

type errorEnvelope struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

type searchRequest struct {
	Query    string        `json:"query,omitempty"`
	Filter   *searchFilter `json:"filter,omitempty"`
	PageSize int           `json:"page_size,omitempty"`
}

type searchResponse[T any] struct {
	Results    []T    `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

type textContent struct {
	Content string `json:"content"`
}

type richTextItem struct {
	Type      string       `json:"type,omitempty"`
	Text      *textContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

func richText(s string) []richTextItem {
	return []richTextItem{{Type: "text", Text: &textContent{Content: s}}}
}

func plainText(items []richTextItem) string {
	var b strings.Builder
	for _, item := range items {
		switch {
		case item.PlainText != "":
			b.WriteString(item.PlainText)
		case item.Text != nil:
			b.WriteString(item.Text.Content)
		}
	}
	return strings.TrimSpace(b.String())
}

type icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

type propertyValue struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Title []richTextItem `json:"title,omitempty"`
}

type pageObject struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url"`
	Icon       *icon                    `json:"icon"`
	Archived   bool                     `json:"archived"`
	InTrash    bool                     `json:"in_trash"`
	Properties map[string]propertyValue `json:"properties"`
}

func (x *pageObject) title() string {
	for _, prop := range x.Properties {
		if prop.Type == string(model.PropertyTypeTitle) {
			return plainText(prop.Title)
		}
	}
	return ""
}

func (x *pageObject) toSummary() model.PageSummary {
	summary := model.PageSummary{
		ID:    x.ID,
		Title: x.title(),
		URL:   x.URL,
	}
	if summary.Title == "" {
		summary.Title = untitled
	}
	if x.Icon != nil && x.Icon.Type == "emoji" {
		summary.Icon = x.Icon.Emoji
	}
	return summary
}

// databaseProperty is a schema entry. The title entry is an empty object on reads.
type databaseProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type databaseObject struct {
	ID         string                      `json:"id"`
	URL        string                      `json:"url"`
	Title      []richTextItem              `json:"title"`
	Archived   bool                        `json:"archived"`
	InTrash    bool                        `json:"in_trash"`
	Properties map[string]databaseProperty `json:"properties"`
}

func (x *databaseObject) toSummary() model.DatabaseSummary {
	summary := model.DatabaseSummary{
		ID:    x.ID,
		Title: plainText(x.Title),
		URL:   x.URL,
	}
	if summary.Title == "" {
		summary.Title = untitled
	}
	for name, prop := range x.Properties {
		if prop.Type == string(model.PropertyTypeTitle) {
			summary.TitleProperty = name
			break
		}
	}
	return summary
}

type parentRef struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

type createDatabaseRequest struct {
	Parent     parentRef      `json:"parent"`
	Title      []richTextItem `json:"title"`
	Properties map[string]any `json:"properties"`
}

type createPageRequest struct {
	Parent     parentRef      `json:"parent"`
	Properties map[string]any `json:"properties"`
}

type selectOption struct {
	Name string `json:"name"`
}

// buildSchema converts definitions to the database properties object
func buildSchema(props []model.PropertyDefinition) map[string]any {
	schema := make(map[string]any, len(props))
	for _, p := range props {
		schema[p.Name] = propertySchema(p)
	}
	return schema
}

func propertySchema(p model.PropertyDefinition) map[string]any {
	switch p.Type {
	case model.PropertyTypeNumber:
		return map[string]any{"number": map[string]any{"format": "number"}}

	case model.PropertyTypeSelect, model.PropertyTypeMultiSelect:
		options := make([]selectOption, 0, len(p.Options))
		for _, o := range p.Options {
			options = append(options, selectOption{Name: o})
		}
		return map[string]any{string(p.Type): map[string]any{"options": options}}

	default:
		return map[string]any{string(p.Type): map[string]any{}}
	}
}
