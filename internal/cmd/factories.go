package cmd

import (
	adaptergit "github.com/renato0307/gitprompt/internal/adapters/git"
	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/services"
)

// ContainerOptions are the resolved settings the adapters are built from
type ContainerOptions struct {
	GitBinary           string
	Locator             adaptergit.LocatorOptions
	OperationPrecedence []domain.Operation
	Untracked           string
}

// Container holds all dependencies for the application
type Container struct {
	StatusService *services.StatusService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) *Container {
	locator := adaptergit.NewLocator(opts.Locator)
	reader := adaptergit.NewReader(adaptergit.ReaderOptions{
		GitBinary:           opts.GitBinary,
		OperationPrecedence: opts.OperationPrecedence,
		Untracked:           opts.Untracked,
	})

	return &Container{
		StatusService: services.NewStatusService(locator, reader),
	}
}
