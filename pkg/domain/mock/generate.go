package mock

//go:generate moq -out mock.go -pkg mock ../interfaces SlackClient UserDirectory NotionClient NotionOAuth SlackUseCases OAuthUseCases
