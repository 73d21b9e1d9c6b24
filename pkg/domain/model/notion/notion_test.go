package notion_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

func TestParseParentOption(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := &notion.Parent{ID: "abc-123", Type: notion.ParentTypeDatabase}
		parsed, err := notion.ParseParentOption(p.OptionValue())
		gt.NoError(t, err)
		gt.V(t, parsed.ID).Equal("abc-123")
		gt.V(t, parsed.Type).Equal(notion.ParentTypeDatabase)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, v := range []string{"", "page", "page:", "workspace:abc"} {
			_, err := notion.ParseParentOption(v)
			gt.Error(t, err)
		}
	})
}

func TestCandidates_Find(t *testing.T) {
	c := &notion.Candidates{
		Pages:     []*notion.PageSummary{{ID: "p1", Title: "Roadmap"}},
		Databases: []*notion.DatabaseSummary{{ID: "d1", Title: "Tasks", TitleProperty: "Task"}},
	}

	page, ok := c.Find(&notion.Parent{ID: "p1", Type: notion.ParentTypePage})
	gt.B(t, ok).True()
	gt.V(t, page.Title).Equal("Roadmap")

	db, ok := c.Find(&notion.Parent{ID: "d1", Type: notion.ParentTypeDatabase})
	gt.B(t, ok).True()
	gt.V(t, db.TitleProperty).Equal("Task")

	_, ok = c.Find(&notion.Parent{ID: "d1", Type: notion.ParentTypePage})
	gt.B(t, ok).False()
}

func TestParseOptions(t *testing.T) {
	gt.V(t, notion.ParseOptions(" High, Low,,High , Mid ")).Equal([]string{"High", "Low", "Mid"})
	gt.A(t, notion.ParseOptions("  ")).Length(0)
}

func TestCatalog(t *testing.T) {
	catalog := notion.DefaultCatalog()
	gt.B(t, catalog.Lookup(notion.PropertyTypeSelect).Options).True()
	gt.B(t, catalog.Lookup(notion.PropertyTypeNumber).Options).False()
	gt.V(t, catalog.Lookup(notion.PropertyType("formula"))).Nil()

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := notion.ParseCatalog([]byte("types:\n  - type: formula\n"))
		gt.Error(t, err)
	})

	t.Run("rejects options on non select types", func(t *testing.T) {
		_, err := notion.ParseCatalog([]byte("types:\n  - type: number\n    options: true\n"))
		gt.Error(t, err)
	})

	t.Run("fills missing labels", func(t *testing.T) {
		c, err := notion.ParseCatalog([]byte("types:\n  - type: date\n"))
		gt.NoError(t, err)
		gt.V(t, c.Types[0].Label).Equal("date")
	})
}

func TestPropertyDefinition_Validate(t *testing.T) {
	catalog := notion.DefaultCatalog()

	def := notion.NewPropertyDefinition("  Priority ", notion.PropertyTypeSelect, []string{"High"})
	gt.V(t, def.Name).Equal("Priority")
	gt.V(t, def.ID).NotEqual("")
	gt.NoError(t, def.Validate(catalog))

	empty := notion.NewPropertyDefinition(" ", notion.PropertyTypeNumber, nil)
	gt.Error(t, empty.Validate(catalog))

	withOptions := notion.NewPropertyDefinition("Count", notion.PropertyTypeNumber, []string{"1"})
	gt.Error(t, withOptions.Validate(catalog))

	gt.B(t, notion.SameName("Status", " status")).True()
}

func TestAPIError(t *testing.T) {
	apiErr := &notion.APIError{StatusCode: 400, Code: "validation_error", Message: "title is too long"}
	wrapped := goerr.Wrap(apiErr, "failed to create database")

	found, ok := notion.AsAPIError(wrapped)
	gt.B(t, ok).True()
	gt.V(t, found.StatusCode).Equal(400)
	gt.S(t, found.UserMessage()).Contains("title is too long")
	gt.B(t, found.IsUnauthorized()).False()

	_, ok = notion.AsAPIError(goerr.New("network down"))
	gt.B(t, ok).False()

	gt.B(t, (&notion.APIError{StatusCode: 401}).IsUnauthorized()).True()
}

func TestWithTitleProperty(t *testing.T) {
	t.Run("adds a title column", func(t *testing.T) {
		props := notion.WithTitleProperty([]notion.PropertyDefinition{
			notion.NewPropertyDefinition("Status", notion.PropertyTypeSelect, nil),
		})
		gt.A(t, props).Length(2)
		gt.V(t, props[0].Type).Equal(notion.PropertyTypeTitle)
		gt.V(t, props[0].Name).Equal(notion.DefaultTitlePropertyName)
	})

	t.Run("avoids a name clash", func(t *testing.T) {
		props := notion.WithTitleProperty([]notion.PropertyDefinition{
			notion.NewPropertyDefinition("name", notion.PropertyTypeRichText, nil),
		})
		gt.V(t, props[0].Name).Equal("Title")
	})

	t.Run("skips every taken title name", func(t *testing.T) {
		props := notion.WithTitleProperty([]notion.PropertyDefinition{
			notion.NewPropertyDefinition("Name", notion.PropertyTypeRichText, nil),
			notion.NewPropertyDefinition("title", notion.PropertyTypeRichText, nil),
			notion.NewPropertyDefinition("Title 2", notion.PropertyTypeNumber, nil),
		})
		gt.A(t, props).Length(4)
		gt.V(t, props[0].Type).Equal(notion.PropertyTypeTitle)
		gt.V(t, props[0].Name).Equal("Title 3")

		for _, p := range props[1:] {
			gt.B(t, notion.SameName(p.Name, props[0].Name)).False()
		}
	})

	t.Run("keeps a user defined title", func(t *testing.T) {
		props := notion.WithTitleProperty([]notion.PropertyDefinition{
			notion.NewPropertyDefinition("Task", notion.PropertyTypeTitle, nil),
		})
		gt.A(t, props).Length(1)
		gt.V(t, props[0].Name).Equal("Task")
	})
}
