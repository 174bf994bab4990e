// Package app provides the dependency injection container for the application.
package app

import (
	"taskpath/internal/domain"
	"taskpath/internal/infra/config"
	"taskpath/internal/infra/imagery"
	"taskpath/internal/infra/jsonstore"
	"taskpath/internal/infra/logging"
	"taskpath/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	Images           domain.ImageLookup // nil when no image service is configured
	Logger           domain.Logger

	// Configuration
	Config  *domain.Config
	DataDir string
}

// New creates a new Container rooted at the given working directory.
// Local configuration is read from dir; the task store and logs live
// under the resolved data directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := domain.DataDir()

	store := jsonstore.New(cfg.StorePath(dataDir))
	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))

	var images domain.ImageLookup
	if cfg.Imagery.BaseURL != "" {
		images = imagery.New(cfg.Imagery.BaseURL, cfg.Imagery.APIKey)
	}

	return &Container{
		Tasks:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		Images:           images,
		Logger:           logger,
		Config:           cfg,
		DataDir:          dataDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, dataDir string, tasks domain.TaskRepository, storeInit domain.StoreInitializer, clock domain.Clock, images domain.ImageLookup, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Images:           images,
		Logger:           logger,
		Config:           cfg,
		DataDir:          dataDir,
	}
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// SetDependenciesUseCase returns a new SetDependencies use case.
func (c *Container) SetDependenciesUseCase() *usecase.SetDependencies {
	return usecase.NewSetDependencies(c.Tasks, c.Logger)
}

// DependencyCandidatesUseCase returns a new DependencyCandidates use case.
func (c *Container) DependencyCandidatesUseCase() *usecase.DependencyCandidates {
	return usecase.NewDependencyCandidates(c.Tasks)
}

// ScheduleTasksUseCase returns a new ScheduleTasks use case.
func (c *Container) ScheduleTasksUseCase() *usecase.ScheduleTasks {
	return usecase.NewScheduleTasks(c.Tasks, c.Clock, c.Logger)
}

// CreateTasksFromFileUseCase returns a new CreateTasksFromFile use case.
func (c *Container) CreateTasksFromFileUseCase() *usecase.CreateTasksFromFile {
	return usecase.NewCreateTasksFromFile(c.Tasks, c.Clock, c.Logger)
}

// AttachImageUseCase returns a new AttachImage use case.
func (c *Container) AttachImageUseCase() *usecase.AttachImage {
	return usecase.NewAttachImage(c.Tasks, c.Images, c.Logger)
}
