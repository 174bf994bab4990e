package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpath/internal/domain"
)

func TestCompleteTask_Execute_Complete(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "task")
	uc := NewCompleteTask(repo, nil)

	err := uc.Execute(context.Background(), CompleteTaskInput{ID: 1})

	require.NoError(t, err)
	assert.True(t, repo.tasks[1].Completed)
}

func TestCompleteTask_Execute_Reopen(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "task").Completed = true
	uc := NewCompleteTask(repo, nil)

	err := uc.Execute(context.Background(), CompleteTaskInput{ID: 1, Reopen: true})

	require.NoError(t, err)
	assert.False(t, repo.tasks[1].Completed)
}

func TestCompleteTask_Execute_NotFound(t *testing.T) {
	uc := NewCompleteTask(newMockTaskRepository(), nil)

	err := uc.Execute(context.Background(), CompleteTaskInput{ID: 9})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
