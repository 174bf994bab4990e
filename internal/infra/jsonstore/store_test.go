package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskpath/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "tasks.json"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")

	store := New(path)

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_NotInitialized(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.json"))

	_, err := store.Get(1)
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("Get() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_NextID(t *testing.T) {
	store := newTestStore(t)

	id1, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id1 != 1 {
		t.Errorf("NextID() = %d, want 1", id1)
	}

	id2, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id2 != 2 {
		t.Errorf("NextID() = %d, want 2", id2)
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:            1,
		Title:         "Test Task",
		Description:   "details",
		DueDate:       &due,
		Labels:        []string{"backend"},
		DependencyIDs: []int{2, 3},
		Created:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := store.Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil, want task")
	}
	if got.Title != task.Title {
		t.Errorf("Title = %q, want %q", got.Title, task.Title)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if len(got.DependencyIDs) != 2 || got.DependencyIDs[0] != 2 {
		t.Errorf("DependencyIDs = %v, want [2 3]", got.DependencyIDs)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(99)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v, want nil", got)
	}
}

func TestStore_List_OrderedByID(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []int{3, 1, 2} {
		if err := store.Save(&domain.Task{ID: id, Title: "t"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	tasks, err := store.List(domain.TaskFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("List() returned %d tasks, want 3", len(tasks))
	}
	for i, want := range []int{1, 2, 3} {
		if tasks[i].ID != want {
			t.Errorf("tasks[%d].ID = %d, want %d", i, tasks[i].ID, want)
		}
	}
}

func TestStore_List_Filters(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.Task{ID: 1, Title: "a", Labels: []string{"x", "y"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(&domain.Task{ID: 2, Title: "b", Completed: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	open := false
	tasks, err := store.List(domain.TaskFilter{Completed: &open})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("List(open) = %v, want task 1 only", tasks)
	}

	tasks, err = store.List(domain.TaskFilter{Labels: []string{"x", "y"}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("List(labels) = %v, want task 1 only", tasks)
	}
}

func TestStore_Delete_UnlinksDependencies(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.Task{ID: 1, Title: "base"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(&domain.Task{ID: 2, Title: "dep", DependencyIDs: []int{1, 3}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("deleted task still present")
	}

	dep, err := store.Get(2)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(dep.DependencyIDs) != 1 || dep.DependencyIDs[0] != 3 {
		t.Errorf("DependencyIDs = %v, want [3]", dep.DependencyIDs)
	}
}

func TestStore_SetDependencies(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.Task{ID: 1, Title: "a", DependencyIDs: []int{2}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Full replacement; own ID is ignored.
	if err := store.SetDependencies(1, []int{1, 3, 4}); err != nil {
		t.Fatalf("SetDependencies() error = %v", err)
	}

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.DependencyIDs) != 2 || got.DependencyIDs[0] != 3 || got.DependencyIDs[1] != 4 {
		t.Errorf("DependencyIDs = %v, want [3 4]", got.DependencyIDs)
	}
}

func TestStore_SetDependencies_TaskNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.SetDependencies(9, []int{1})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("SetDependencies() error = %v, want ErrTaskNotFound", err)
	}
}
