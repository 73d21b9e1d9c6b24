package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/slack-go/slack"
)

// Slack Block Kit limits
const (
	maxOptionText    = 75
	maxGroupOptions  = 100
	maxTitleLength   = 2000
	maxOptionsLength = 1000
)

func newRevision() string {
	return uuid.NewString()[:8]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// createView renders the modal from the session state. notice is shown on
// top when not empty. Blocks whose IDs carry revision are reset by Slack
// whenever revision changes.
func createView(st *modal.State, catalog *notion.Catalog, revision, notice string) slack.ModalViewRequest {
	var blocks []slack.Block

	if notice != "" {
		blocks = append(blocks, slack.NewSectionBlock(mrkdwn(":warning: "+notice), nil, nil,
			slack.SectionBlockOptionBlockID(modal.BlockNotice)))
	}

	title := slack.NewPlainTextInputBlockElement(plain("e.g. Product roadmap"), modal.ActionTitleInput)
	title.InitialValue = st.Input(modal.BlockTitle)
	title.MaxLength = maxTitleLength
	titleBlock := slack.NewInputBlock(modal.BlockTitle, plain("Name"), nil, title)
	titleBlock.Optional = true
	blocks = append(blocks, titleBlock)

	blocks = append(blocks, parentBlock(st, revision))

	if st.AcceptsProperties() {
		blocks = append(blocks, propertyBlocks(st, catalog, revision)...)
	} else {
		blocks = append(blocks, slack.NewContextBlock("",
			mrkdwn(fmt.Sprintf("A new page will be added to *%s*.", st.Parent.Title))))
	}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      modal.ViewCreateDatabase,
		Title:           plain("Create in Notion"),
		Submit:          plain("Create"),
		Close:           plain("Cancel"),
		Blocks:          slack.Blocks{BlockSet: blocks},
		PrivateMetadata: revision,
		NotifyOnClose:   true,
	}
}

func parentOption(p *notion.Parent) *slack.OptionBlockObject {
	return slack.NewOptionBlockObject(p.OptionValue(), plain(truncate(p.Title, maxOptionText)), nil)
}

func parentBlock(st *modal.State, revision string) slack.Block {
	if st.Candidates.IsEmpty() {
		return slack.NewSectionBlock(
			mrkdwn("*Parent*\nNo pages or databases are shared with the integration. Share a page with it in Notion and run /notion create again."),
			nil, nil, slack.SectionBlockOptionBlockID(modal.BlockParent))
	}

	var groups []*slack.OptionGroupBlockObject
	if pages := st.Candidates.Pages; len(pages) > 0 {
		var options []*slack.OptionBlockObject
		for _, page := range pages[:min(len(pages), maxGroupOptions)] {
			title := page.Title
			if page.Icon != "" {
				title = page.Icon + " " + title
			}
			options = append(options, parentOption(&notion.Parent{ID: page.ID, Type: notion.ParentTypePage, Title: title}))
		}
		groups = append(groups, slack.NewOptionGroupBlockElement(plain("Pages (new database)"), options...))
	}
	if dbs := st.Candidates.Databases; len(dbs) > 0 {
		var options []*slack.OptionBlockObject
		for _, db := range dbs[:min(len(dbs), maxGroupOptions)] {
			options = append(options, parentOption(&notion.Parent{ID: db.ID, Type: notion.ParentTypeDatabase, Title: db.Title}))
		}
		groups = append(groups, slack.NewOptionGroupBlockElement(plain("Databases (new page)"), options...))
	}

	selector := slack.NewOptionsGroupSelectBlockElement(slack.OptTypeStatic, plain("Choose where to create"),
		modal.ActionParentSelect, groups...)
	if st.Parent != nil {
		if selected, ok := st.Candidates.Find(st.Parent); ok {
			selector.InitialOption = initialParentOption(selected, st.Candidates)
		}
	}

	block := slack.NewInputBlock(modal.RevisionBlockID(modal.BlockParent, revision), plain("Parent"),
		plain("A page gets a new database. A database gets a new page."), selector)
	block.Optional = true
	block.DispatchAction = true
	return block
}

// initialParentOption must equal one of the rendered options, icon included
func initialParentOption(p *notion.Parent, candidates *notion.Candidates) *slack.OptionBlockObject {
	if p.Type == notion.ParentTypePage {
		for _, page := range candidates.Pages {
			if page.ID == p.ID && page.Icon != "" {
				return parentOption(&notion.Parent{ID: p.ID, Type: p.Type, Title: page.Icon + " " + page.Title})
			}
		}
	}
	return parentOption(p)
}

func propertyBlocks(st *modal.State, catalog *notion.Catalog, revision string) []slack.Block {
	blocks := []slack.Block{
		slack.NewDividerBlock(),
		slack.NewSectionBlock(mrkdwn("*Properties*\nA title column is added automatically unless you define one."), nil, nil),
	}

	for _, p := range st.Properties {
		remove := slack.NewButtonBlockElement(modal.ActionPropertyRemove, p.Name, plain("Remove"))
		remove.Style = slack.StyleDanger
		blocks = append(blocks, slack.NewSectionBlock(mrkdwn(describeProperty(p, catalog)), nil,
			slack.NewAccessory(remove),
			slack.SectionBlockOptionBlockID(modal.RevisionBlockID(modal.BlockProperty, p.ID))))
	}

	name := slack.NewPlainTextInputBlockElement(plain("e.g. Status"), modal.ActionPropertyNameInput)
	name.MaxLength = 100
	nameBlock := slack.NewInputBlock(modal.RevisionBlockID(modal.BlockPropertyName, revision), plain("Property name"), nil, name)
	nameBlock.Optional = true

	var typeOptions []*slack.OptionBlockObject
	for _, t := range catalog.Types {
		typeOptions = append(typeOptions, slack.NewOptionBlockObject(string(t.Type), plain(t.Label), nil))
	}
	typeSelect := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, plain("Choose a type"), modal.ActionPropertyTypeSelect, typeOptions...)
	typeBlock := slack.NewInputBlock(modal.RevisionBlockID(modal.BlockPropertyType, revision), plain("Property type"), nil, typeSelect)
	typeBlock.Optional = true

	options := slack.NewPlainTextInputBlockElement(plain("e.g. Todo, Doing, Done"), modal.ActionPropertyOptionsInput)
	options.MaxLength = maxOptionsLength
	optionsBlock := slack.NewInputBlock(modal.RevisionBlockID(modal.BlockPropertyOptions, revision), plain("Options"),
		plain("Comma separated. Only for select and multi-select."), options)
	optionsBlock.Optional = true

	add := slack.NewButtonBlockElement(modal.ActionPropertyAdd, "add", plain("Add property"))

	return append(blocks,
		nameBlock,
		typeBlock,
		optionsBlock,
		slack.NewActionBlock(modal.BlockPropertyActions, add),
	)
}

func describeProperty(p notion.PropertyDefinition, catalog *notion.Catalog) string {
	label := string(p.Type)
	if entry := catalog.Lookup(p.Type); entry != nil {
		label = entry.Label
	}

	text := fmt.Sprintf("*%s*  ·  %s", p.Name, label)
	if len(p.Options) > 0 {
		text += "\n" + strings.Join(p.Options, ", ")
	}
	return text
}
