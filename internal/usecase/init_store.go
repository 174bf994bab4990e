package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"taskpath/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	DataDir string // Path to the data directory
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	DataDir            string // Path to the created data directory
	AlreadyInitialized bool   // True if the store already existed
}

// InitStore prepares the data directory and creates an empty task store.
type InitStore struct {
	storeInit domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer) *InitStore {
	return &InitStore{storeInit: storeInit}
}

// Execute creates the data directory, the logs directory, and an empty
// task store. Running it again is a no-op apart from repairing missing
// directories.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	alreadyInitialized := uc.storeInit.IsInitialized()

	if err := os.MkdirAll(in.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	logsDir := filepath.Join(in.DataDir, "logs")
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize task store: %w", err)
	}

	return &InitStoreOutput{
		DataDir:            in.DataDir,
		AlreadyInitialized: alreadyInitialized,
	}, nil
}
