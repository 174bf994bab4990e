// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"taskpath/internal/domain"
)

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)

// storeData represents the JSON file structure.
type storeData struct {
	Tasks map[string]*taskData `json:"tasks"`
	Meta  meta                 `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID int `json:"nextTaskID"`
}

// taskData is the JSON representation of a task (without ID, which is the map key).
type taskData = domain.Task

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		if t, ok := data.Tasks[strconv.Itoa(id)]; ok {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// List retrieves tasks matching the filter, ordered by ID.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id

			if filter.Completed != nil && t.Completed != *filter.Completed {
				continue
			}
			if !containsAll(t.Labels, filter.Labels) {
				continue
			}

			tasks = append(tasks, t)
		}
		return nil
	})

	// Sort by ID for consistent ordering
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})

	return tasks, err
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks[strconv.Itoa(task.ID)] = task
		return nil
	})
}

// Delete removes a task by ID and strips the ID from every remaining task's
// dependency list so no dangling references persist.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Tasks, strconv.Itoa(id))
		for _, t := range data.Tasks {
			if t.DependsOn(id) {
				t.DependencyIDs = removeID(t.DependencyIDs, id)
			}
		}
		return nil
	})
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// SetDependencies replaces the task's dependency list wholesale (clear and
// re-link). The task's own ID is ignored.
func (s *Store) SetDependencies(id int, dependencyIDs []int) error {
	return s.withLockWrite(func(data *storeData) error {
		task, ok := data.Tasks[strconv.Itoa(id)]
		if !ok {
			return domain.ErrTaskNotFound
		}
		var deps []int
		for _, dep := range dependencyIDs {
			if dep != id {
				deps = append(deps, dep)
			}
		}
		task.DependencyIDs = deps
		return nil
	})
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	data := &storeData{
		Meta:  meta{NextTaskID: 1},
		Tasks: make(map[string]*taskData),
	}
	return s.write(data)
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Tasks == nil {
		data.Tasks = make(map[string]*taskData)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// containsAll reports whether labels includes every element of want.
func containsAll(labels, want []string) bool {
	for _, w := range want {
		if !slices.Contains(labels, w) {
			return false
		}
	}
	return true
}

// removeID returns ids without the given id, preserving order.
func removeID(ids []int, id int) []int {
	var out []int
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
