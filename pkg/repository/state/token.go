package state

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// TokenStore keeps the current Notion token of each user
type TokenStore struct {
	adapter interfaces.StorageAdapter
}

// NewTokenStore creates a token store on top of a key-value adapter
func NewTokenStore(adapter interfaces.StorageAdapter) *TokenStore {
	return &TokenStore{adapter: adapter}
}

// SaveToken replaces any token stored for the user
func (s *TokenStore) SaveToken(ctx context.Context, token *integration.NotionIntegration) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notion token", goerr.T(apperr.ErrTagValidation))
	}

	if err := putJSON(ctx, s.adapter, tokenKey(token.UserID), token); err != nil {
		return goerr.Wrap(err, "failed to save notion token", goerr.TV(apperr.UserIDKey, token.UserID))
	}
	return nil
}

// GetToken returns nil without error if the user is not connected
func (s *TokenStore) GetToken(ctx context.Context, userID string) (*integration.NotionIntegration, error) {
	var token integration.NotionIntegration
	found, err := getJSON(ctx, s.adapter, tokenKey(userID), &token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get notion token", goerr.TV(apperr.UserIDKey, userID))
	}
	if !found {
		return nil, nil
	}
	return &token, nil
}

func (s *TokenStore) DeleteToken(ctx context.Context, userID string) error {
	if err := deleteKey(ctx, s.adapter, tokenKey(userID)); err != nil {
		return goerr.Wrap(err, "failed to delete notion token", goerr.TV(apperr.UserIDKey, userID))
	}
	return nil
}

var _ interfaces.TokenRepository = (*TokenStore)(nil)
