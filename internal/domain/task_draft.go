package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from a YAML import file.
// Dependency references can be either a relative index (1-based, within the
// same file) or an absolute task ID prefixed with '#'.
type TaskDraft struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Due         string          `yaml:"due"` // YYYY-MM-DD, optional
	Labels      []string        `yaml:"labels"`
	DependsOn   []DependencyRef `yaml:"depends_on"`
}

// DependencyRef is a raw dependency reference from an import file.
// "2" refers to the 2nd task in the same file; "#12" refers to existing
// task ID 12.
type DependencyRef string

// UnmarshalYAML accepts both scalar ints (relative refs) and strings.
func (r *DependencyRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar, got %s", ErrInvalidDependencyRef, value.Tag)
	}
	*r = DependencyRef(value.Value)
	return nil
}

// Resolve maps the reference to a concrete task ID. createdIDs holds the IDs
// of tasks created so far from the same file, in file order; a relative
// reference must point at an earlier entry.
func (r DependencyRef) Resolve(createdIDs []int) (int, error) {
	s := string(r)
	if id, ok := strings.CutPrefix(s, "#"); ok {
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDependencyRef, s)
		}
		return n, nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDependencyRef, s)
	}
	if idx < 1 || idx > len(createdIDs) {
		return 0, fmt.Errorf("%w: relative reference %d must point at an earlier task in the file", ErrInvalidDependencyRef, idx)
	}
	return createdIDs[idx-1], nil
}

// draftFile is the import file structure.
type draftFile struct {
	Tasks []TaskDraft `yaml:"tasks"`
}

// ParseTaskDrafts parses a YAML file containing one or more task definitions.
//
// Format:
//
//	tasks:
//	  - title: Design schema
//	    due: 2026-09-05
//	    labels: [backend]
//	  - title: Implement API
//	    depends_on: [1]        # 1st task in this file
//	  - title: Deploy
//	    depends_on: ["#12", 2] # existing task 12 and 2nd task in this file
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	var file draftFile
	if err := yaml.Unmarshal([]byte(content), &file); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(file.Tasks) == 0 {
		return nil, ErrNoTasksInFile
	}

	for i, draft := range file.Tasks {
		if strings.TrimSpace(draft.Title) == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, ErrEmptyTitle)
		}
		if draft.Due != "" {
			if _, err := ParseDueDate(draft.Due); err != nil {
				return nil, fmt.Errorf("task %d: %w", i+1, err)
			}
		}
	}

	return file.Tasks, nil
}

// ParseDueDate parses a YYYY-MM-DD due date string.
func ParseDueDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return t, nil
}
