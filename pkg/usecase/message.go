package usecase

import (
	"fmt"

	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/slack-go/slack"
)

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func textSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(mrkdwn(text), nil, nil)
}

func connectPromptBlocks(authURL, reason string) []slack.Block {
	text := "Connect your Notion workspace to create databases and pages from Slack."
	if reason != "" {
		text = reason
	}

	button := slack.NewButtonBlockElement(modal.ActionConnectWorkspace, "connect", plain("Connect to Notion"))
	button.URL = authURL
	button.Style = slack.StylePrimary

	return []slack.Block{
		textSection(text),
		slack.NewActionBlock("connect", button),
		slack.NewContextBlock("", plain("The link is valid for a few minutes. Run /notion connect again if it expires.")),
	}
}

func connectedBlocks(workspaceName string) []slack.Block {
	return []slack.Block{
		textSection(fmt.Sprintf(":white_check_mark: Connected to Notion workspace *%s*.", workspaceName)),
		slack.NewContextBlock("", plain("Run /notion create to create a database or page.")),
	}
}

func connectFailedBlocks(message string) []slack.Block {
	return []slack.Block{
		textSection(":warning: Could not connect to Notion. " + message),
	}
}

func failureBlocks() []slack.Block {
	return []slack.Block{
		textSection(":warning: Something went wrong while handling your request. Please try again."),
	}
}

func workspaceNotAllowedBlocks(workspaceName string) []slack.Block {
	return []slack.Block{
		textSection(fmt.Sprintf(":no_entry: Notion workspace *%s* is not allowed for this app. Ask an administrator which workspace to use.", workspaceName)),
	}
}

func disconnectedBlocks(workspaceName string) []slack.Block {
	return []slack.Block{
		textSection(fmt.Sprintf("Disconnected from Notion workspace *%s*.", workspaceName)),
	}
}

func notConnectedBlocks() []slack.Block {
	return []slack.Block{
		textSection("No Notion workspace is connected."),
	}
}

func statusBlocks(token *integration.NotionIntegration) []slack.Block {
	return []slack.Block{
		textSection(fmt.Sprintf("Connected to Notion workspace *%s* since %s.",
			token.WorkspaceName, token.CreatedAt.Format("2006-01-02"))),
	}
}

func helpBlocks() []slack.Block {
	return []slack.Block{
		textSection("*Usage*\n" +
			"`/notion connect` connect your Notion workspace\n" +
			"`/notion create` create a database or a page\n" +
			"`/notion status` show the connected workspace\n" +
			"`/notion disconnect` forget the connected workspace"),
	}
}

func createdBlocks(created *notion.CreatedEntity, parent *notion.Parent) []slack.Block {
	kind := "database"
	if created.Object == "page" {
		kind = "page"
	}

	text := fmt.Sprintf(":sparkles: Created %s *%s*", kind, created.Title)
	if created.URL != "" {
		text = fmt.Sprintf(":sparkles: Created %s *<%s|%s>*", kind, created.URL, created.Title)
	}
	if parent != nil && parent.Title != "" {
		text += fmt.Sprintf(" in *%s*", parent.Title)
	}

	return []slack.Block{textSection(text + ".")}
}
