package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

func putJSON(ctx context.Context, adapter interfaces.StorageAdapter, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return goerr.Wrap(err, "failed to encode value", goerr.TV(apperr.StorageKeyKey, key))
	}

	if err := adapter.Put(ctx, key, data); err != nil {
		return goerr.Wrap(err, "failed to put value",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}
	return nil
}

// getJSON decodes the value into v. It returns false without error when the key is absent.
func getJSON(ctx context.Context, adapter interfaces.StorageAdapter, key string, v any) (bool, error) {
	data, err := adapter.Get(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrStorageKeyNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get value",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, goerr.Wrap(err, "failed to decode value",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}
	return true, nil
}

func deleteKey(ctx context.Context, adapter interfaces.StorageAdapter, key string) error {
	if err := adapter.Delete(ctx, key); err != nil {
		return goerr.Wrap(err, "failed to delete value",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}
	return nil
}
