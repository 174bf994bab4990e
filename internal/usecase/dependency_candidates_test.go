package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpath/internal/domain"
)

func candidateIDs(out *DependencyCandidatesOutput) []int {
	ids := make([]int, 0, len(out.Candidates))
	for _, c := range out.Candidates {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestDependencyCandidates_Execute_ExcludesSelfAndExistingDeps(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b", 1)
	addTask(repo, 3, "c")
	uc := NewDependencyCandidates(repo)

	out, err := uc.Execute(context.Background(), DependencyCandidatesInput{ID: 2})

	require.NoError(t, err)
	assert.Equal(t, []int{3}, candidateIDs(out))
}

// Cycle-creating candidates must be excluded from the selectable list, not
// included. Guards against the inverted filter polarity.
func TestDependencyCandidates_Execute_ExcludesCycleCreators(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b", 1)
	addTask(repo, 3, "c", 2)
	addTask(repo, 4, "d", 3)
	addTask(repo, 5, "free")
	uc := NewDependencyCandidates(repo)

	out, err := uc.Execute(context.Background(), DependencyCandidatesInput{ID: 1})

	require.NoError(t, err)
	// 2 (direct), 3 (2-hop) and 4 (3-hop) all reach 1 transitively; only the
	// unconnected task remains selectable.
	assert.Equal(t, []int{5}, candidateIDs(out))
}

func TestDependencyCandidates_Execute_AllowsDownstreamEdges(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "a")
	addTask(repo, 2, "b", 1)
	addTask(repo, 3, "c", 2)
	uc := NewDependencyCandidates(repo)

	// The sink may depend on anything upstream that it doesn't already
	// depend on directly.
	out, err := uc.Execute(context.Background(), DependencyCandidatesInput{ID: 3})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, candidateIDs(out))
}

func TestDependencyCandidates_Execute_TaskNotFound(t *testing.T) {
	uc := NewDependencyCandidates(newMockTaskRepository())

	_, err := uc.Execute(context.Background(), DependencyCandidatesInput{ID: 1})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
