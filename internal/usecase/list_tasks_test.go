package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute_DenormalizesLinks(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "base")
	addTask(repo, 2, "mid", 1)
	addTask(repo, 3, "top", 2)
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{IncludeComplete: true})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)

	mid := out.Tasks[1]
	assert.Equal(t, "mid", mid.Task.Title)
	require.Len(t, mid.Dependencies, 1)
	assert.Equal(t, 1, mid.Dependencies[0].ID)
	require.Len(t, mid.Dependents, 1)
	assert.Equal(t, 3, mid.Dependents[0].ID)
}

func TestListTasks_Execute_ExcludesCompletedByDefault(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "open")
	addTask(repo, 2, "done").Completed = true
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "open", out.Tasks[0].Task.Title)
}

func TestListTasks_Execute_LabelFilter(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a").Labels = []string{"backend", "urgent"}
	addTask(repo, 2, "b").Labels = []string{"backend"}
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{Labels: []string{"backend", "urgent"}})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, 1, out.Tasks[0].Task.ID)
}

func TestListTasks_Execute_LinksResolveAgainstFullSet(t *testing.T) {
	// A completed dependency is filtered from the listing but still appears
	// in the dependency list of the tasks that reference it.
	repo := newMockTaskRepository()
	addTask(repo, 1, "done").Completed = true
	addTask(repo, 2, "open", 1)
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	require.Len(t, out.Tasks[0].Dependencies, 1)
	assert.Equal(t, 1, out.Tasks[0].Dependencies[0].ID)
}
