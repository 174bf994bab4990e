package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/domain"
)

// AttachImageInput contains the parameters for attaching an illustration.
type AttachImageInput struct {
	Query string // Search query (empty = use the task title)
	ID    int    // Task ID (required)
}

// AttachImageOutput contains the stored image URL.
type AttachImageOutput struct {
	URL string
}

// AttachImage is the use case for fetching an illustration from the external
// image-lookup service and storing its URL on the task. The scheduling engine
// never touches this collaborator.
type AttachImage struct {
	tasks  domain.TaskRepository
	images domain.ImageLookup
	logger domain.Logger
}

// NewAttachImage creates a new AttachImage use case.
func NewAttachImage(tasks domain.TaskRepository, images domain.ImageLookup, logger domain.Logger) *AttachImage {
	return &AttachImage{
		tasks:  tasks,
		images: images,
		logger: logger,
	}
}

// Execute looks up an image and stores its URL on the task.
func (uc *AttachImage) Execute(ctx context.Context, in AttachImageInput) (*AttachImageOutput, error) {
	if uc.images == nil {
		return nil, domain.ErrImageryNotConfigured
	}

	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	query := in.Query
	if query == "" {
		query = task.Title
	}

	url, err := uc.images.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search image: %w", err)
	}

	task.ImageURL = url
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "image", fmt.Sprintf("attached %s", url))
	}

	return &AttachImageOutput{URL: url}, nil
}
