package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpath/internal/testutil"
)

func TestInitStore_Execute(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "taskpath")
	storeInit := &testutil.MockStoreInitializer{}
	uc := NewInitStore(storeInit)

	out, err := uc.Execute(context.Background(), InitStoreInput{DataDir: dataDir})
	require.NoError(t, err)

	assert.False(t, out.AlreadyInitialized)
	assert.Equal(t, dataDir, out.DataDir)
	assert.True(t, storeInit.Initialized)

	info, err := os.Stat(filepath.Join(dataDir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitStore_Execute_AlreadyInitialized(t *testing.T) {
	dataDir := t.TempDir()
	storeInit := &testutil.MockStoreInitializer{Initialized: true}
	uc := NewInitStore(storeInit)

	out, err := uc.Execute(context.Background(), InitStoreInput{DataDir: dataDir})
	require.NoError(t, err)

	assert.True(t, out.AlreadyInitialized)
}
