package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpath/internal/domain"
)

func TestSetDependencies_Execute_FullReplacement(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b")
	addTask(repo, 3, "c", 1)
	uc := NewSetDependencies(repo, nil)

	// Clear and re-link: the old dependency on 1 is replaced, not merged.
	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 3, DependencyIDs: []int{2}})

	require.NoError(t, err)
	assert.Equal(t, []int{2}, repo.tasks[3].DependencyIDs)
}

func TestSetDependencies_Execute_IgnoresSelfReference(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b")
	uc := NewSetDependencies(repo, nil)

	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 2, DependencyIDs: []int{2, 1}})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, repo.tasks[2].DependencyIDs)
}

func TestSetDependencies_Execute_DependencyNotFound(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	uc := NewSetDependencies(repo, nil)

	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 1, DependencyIDs: []int{42}})

	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestSetDependencies_Execute_RejectsDirectCycle(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b", 1)
	uc := NewSetDependencies(repo, nil)

	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 1, DependencyIDs: []int{2}})

	assert.ErrorIs(t, err, domain.ErrDependencyCycle)
	assert.Empty(t, repo.tasks[1].DependencyIDs, "rejected edge must never be written")
}

func TestSetDependencies_Execute_RejectsTransitiveCycle(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b", 1)
	addTask(repo, 3, "c", 2)
	uc := NewSetDependencies(repo, nil)

	// 3 depends on 1 through 2: "1 depends on 3" must be caught by the
	// transitive check, not just a direct-edge comparison.
	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 1, DependencyIDs: []int{3}})

	assert.ErrorIs(t, err, domain.ErrDependencyCycle)
}

func TestSetDependencies_Execute_TaskNotFound(t *testing.T) {
	uc := NewSetDependencies(newMockTaskRepository(), nil)

	err := uc.Execute(context.Background(), SetDependenciesInput{ID: 5})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
