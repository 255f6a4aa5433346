package runtime

import (
	"strings"

	"github.com/docker/docker/api/types/container"

	"github.com/wharfd/wharf/pkg/errdefs"
	"github.com/wharfd/wharf/pkg/types"
)

// unknownModuleName is reported when an engine record carries no name.
const unknownModuleName = "Unknown"

// DockerModule describes one engine-managed module as observed by List.
// Descriptors are assembled fresh on every list call and never cached.
type DockerModule struct {
	name   string
	config *types.Config
	engine EngineClient
}

// NewDockerModule builds a descriptor from a display name and config. The
// engine handle is shared, not owned; closing it is the runtime's job.
func NewDockerModule(engine EngineClient, name string, config *types.Config) (*DockerModule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errdefs.NewValidation("module name is empty or blank")
	}
	if config == nil {
		return nil, errdefs.NewValidation("module config is nil")
	}
	return &DockerModule{name: name, config: config, engine: engine}, nil
}

// Name returns the module's display name.
func (m *DockerModule) Name() string { return m.name }

// Type returns the module type tag.
func (m *DockerModule) Type() string { return types.ModuleTypeDocker }

// Config returns the config derived from the engine record.
func (m *DockerModule) Config() *types.Config { return m.config }

// newModuleFromSummary derives a descriptor from a raw engine listing
// record. The config comes from the record's image and labels; the display
// name from the first reported name with its leading separator stripped.
func newModuleFromSummary(engine EngineClient, summary container.Summary) (*DockerModule, error) {
	labels := make(map[string]string, len(summary.Labels))
	for key, value := range summary.Labels {
		labels[key] = value
	}

	config, err := types.NewConfig(summary.Image, types.CreateOptions{
		Config: &container.Config{Labels: labels},
	})
	if err != nil {
		return nil, err
	}

	// a record with no names gets the sentinel; a record whose name strips
	// to nothing fails descriptor validation and is dropped by the caller
	name := unknownModuleName
	if len(summary.Names) > 0 {
		name = strings.TrimPrefix(summary.Names[0], "/")
	}

	return NewDockerModule(engine, name, config)
}
