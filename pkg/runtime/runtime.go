package runtime

import (
	"context"

	"github.com/wharfd/wharf/pkg/types"
)

// ModuleRegistry manages images in the engine's local image store.
type ModuleRegistry interface {
	// Pull fetches an image by name/tag, optionally authenticating against
	// the registry with credentials.
	Pull(ctx context.Context, name string, credentials *types.RegistryCredentials) error

	// RemoveImage deletes an image from the engine by name.
	RemoveImage(ctx context.Context, name string) error
}

// ModuleRuntime executes single module lifecycle operations against the
// engine. It does not decide desired state or reconcile drift; it performs
// exactly the operation requested and reports the engine's result.
type ModuleRuntime interface {
	// Create materializes the module described by spec as an engine
	// container. It does not start the container.
	Create(ctx context.Context, spec types.ModuleSpec) error

	// Start, Stop, Restart and Remove operate on an existing container by
	// id or name. Stop and Restart carry a fixed grace period after which
	// the engine force-kills the target.
	Start(ctx context.Context, id string) error
	Stop(ctx context.Context, id string) error
	Restart(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error

	// List returns a descriptor for every container owned by this
	// orchestration domain, including stopped ones.
	List(ctx context.Context) ([]*DockerModule, error)

	// Registry returns the same runtime viewed as its registry capability.
	Registry() ModuleRegistry
}
