package runtime

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog"

	"github.com/wharfd/wharf/pkg/errdefs"
	"github.com/wharfd/wharf/pkg/log"
	"github.com/wharfd/wharf/pkg/metrics"
	"github.com/wharfd/wharf/pkg/types"
)

const (
	// DefaultEndpoint is the engine's default local socket
	DefaultEndpoint = "unix:///var/run/docker.sock"

	// waitBeforeKillSeconds is the grace period sent with stop and restart
	// requests; the engine force-kills the target once it elapses.
	waitBeforeKillSeconds = 10
)

var (
	_ ModuleRuntime  = (*DockerRuntime)(nil)
	_ ModuleRegistry = (*DockerRuntime)(nil)
)

// DockerRuntime adapts module lifecycle operations onto the Docker Engine
// API. It holds no mutable state beyond the immutable configured network id,
// so concurrent calls need no additional locking.
type DockerRuntime struct {
	engine    EngineClient
	basePath  string
	networkID string
	logger    zerolog.Logger
}

// NewDockerRuntime builds a runtime bound to the engine at endpoint.
// Supported locators: unix:// (the socket must exist), tcp://, http://,
// https:// and npipe://. Any other scheme is a configuration error.
func NewDockerRuntime(endpoint string) (*DockerRuntime, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	engineURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, errdefs.NewConfiguration(err, "parse engine endpoint %q", endpoint)
	}

	var basePath, host string
	switch engineURL.Scheme {
	case "unix":
		if _, err := os.Stat(engineURL.Path); err != nil {
			return nil, errdefs.NewConfiguration(err, "engine socket %q not reachable", engineURL.Path)
		}
		basePath = engineURL.Path
		host = endpoint
	case "tcp", "npipe":
		basePath = endpoint
		host = endpoint
	case "http", "https":
		// the SDK only dials unix/tcp/npipe; keep the locator as the base
		// path and hand the SDK a tcp host
		basePath = endpoint
		host = "tcp://" + engineURL.Host
	default:
		return nil, errdefs.NewConfiguration(nil, "unsupported engine endpoint scheme %q", engineURL.Scheme)
	}

	engine, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, errdefs.NewConfiguration(err, "build engine client for %q", endpoint)
	}

	return &DockerRuntime{
		engine:   engine,
		basePath: basePath,
		logger:   log.WithComponent("runtime"),
	}, nil
}

// WithNetworkID returns a runtime that attaches every created module to the
// given network. Apply before the first create; the id is immutable for the
// life of the returned runtime.
func (r *DockerRuntime) WithNetworkID(networkID string) *DockerRuntime {
	out := *r
	out.networkID = networkID
	return &out
}

// BasePath returns the engine API base path derived from the endpoint
// locator: the socket's filesystem path for local sockets, the full locator
// otherwise.
func (r *DockerRuntime) BasePath() string { return r.basePath }

// Registry returns this runtime viewed as its registry capability.
func (r *DockerRuntime) Registry() ModuleRegistry { return r }

// Close releases the engine client's transport.
func (r *DockerRuntime) Close() error {
	return r.engine.Close()
}

// Pull fetches an image from its registry, authenticating with the optional
// credentials. The engine only completes the pull once the progress stream
// is drained.
func (r *DockerRuntime) Pull(ctx context.Context, name string, credentials *types.RegistryCredentials) error {
	if err := ensureNotEmpty(name, "image name"); err != nil {
		return err
	}

	registryAuth, err := encodeRegistryAuth(credentials)
	if err != nil {
		return err
	}

	progress, err := r.engine.ImagePull(ctx, name, image.PullOptions{RegistryAuth: registryAuth})
	metrics.RecordEngineRequest("image_pull", err)
	if err != nil {
		return errdefs.NewEngine("pull image "+name, err)
	}
	defer progress.Close()

	if _, err := io.Copy(io.Discard, progress); err != nil {
		return errdefs.NewEngine("pull image "+name, err)
	}

	r.logger.Debug().Str("image", name).Msg("image pulled")
	return nil
}

// RemoveImage deletes an image from the engine by name.
func (r *DockerRuntime) RemoveImage(ctx context.Context, name string) error {
	if err := ensureNotEmpty(name, "image name"); err != nil {
		return err
	}

	// the wire default is noprune=false; the SDK flag is its inverse
	_, err := r.engine.ImageRemove(ctx, name, image.RemoveOptions{Force: false, PruneChildren: true})
	metrics.RecordEngineRequest("image_remove", err)
	if err != nil {
		return errdefs.NewEngine("remove image "+name, err)
	}
	return nil
}

// Create materializes spec as an engine container. The caller's payload is
// never mutated: environment merging, ownership labeling and network
// attachment all happen on a deep copy.
func (r *DockerRuntime) Create(ctx context.Context, spec types.ModuleSpec) error {
	if spec.Type != types.ModuleTypeDocker {
		return errdefs.NewValidation("unsupported module type %q, expected %q", spec.Type, types.ModuleTypeDocker)
	}
	if spec.Config == nil {
		return errdefs.NewValidation("module %q has no config", spec.Name)
	}

	opts, err := spec.Config.CloneCreateOptions()
	if err != nil {
		return err
	}
	if opts.Config == nil {
		opts.Config = &container.Config{}
	}

	opts.Config.Env = mergeEnv(opts.Config.Env, spec.Env)
	opts.Config.Image = spec.Config.Image
	opts.Config.Labels = withOwnershipLabel(opts.Config.Labels)

	if r.networkID != "" {
		opts.NetworkingConfig = attachNetwork(opts.NetworkingConfig, r.networkID)
	}

	_, err = r.engine.ContainerCreate(ctx, opts.Config, opts.HostConfig, opts.NetworkingConfig, nil, spec.Name)
	metrics.RecordEngineRequest("container_create", err)
	if err != nil {
		return errdefs.NewEngine("create module "+spec.Name, err)
	}

	log.WithModule(spec.Name).Debug().Str("image", spec.Config.Image).Msg("module created")
	return nil
}

// Start starts the container identified by id.
func (r *DockerRuntime) Start(ctx context.Context, id string) error {
	if err := ensureNotEmpty(id, "module id"); err != nil {
		return err
	}

	err := r.engine.ContainerStart(ctx, id, container.StartOptions{})
	metrics.RecordEngineRequest("container_start", err)
	if err != nil {
		return errdefs.NewEngine("start module "+id, err)
	}
	return nil
}

// Stop stops the container identified by id, granting the fixed grace
// period before the engine force-kills it.
func (r *DockerRuntime) Stop(ctx context.Context, id string) error {
	if err := ensureNotEmpty(id, "module id"); err != nil {
		return err
	}

	timeout := waitBeforeKillSeconds
	err := r.engine.ContainerStop(ctx, id, container.StopOptions{Timeout: &timeout})
	metrics.RecordEngineRequest("container_stop", err)
	if err != nil {
		return errdefs.NewEngine("stop module "+id, err)
	}
	return nil
}

// Restart restarts the container identified by id with the same grace
// period as Stop.
func (r *DockerRuntime) Restart(ctx context.Context, id string) error {
	if err := ensureNotEmpty(id, "module id"); err != nil {
		return err
	}

	timeout := waitBeforeKillSeconds
	err := r.engine.ContainerRestart(ctx, id, container.StopOptions{Timeout: &timeout})
	metrics.RecordEngineRequest("container_restart", err)
	if err != nil {
		return errdefs.NewEngine("restart module "+id, err)
	}
	return nil
}

// Remove force-removes the container identified by id, cleaning up its
// anonymous volumes and links.
func (r *DockerRuntime) Remove(ctx context.Context, id string) error {
	if err := ensureNotEmpty(id, "module id"); err != nil {
		return err
	}

	err := r.engine.ContainerRemove(ctx, id, container.RemoveOptions{
		Force:         true,
		RemoveVolumes: true,
		RemoveLinks:   true,
	})
	metrics.RecordEngineRequest("container_remove", err)
	if err != nil {
		return errdefs.NewEngine("remove module "+id, err)
	}
	return nil
}

// List returns a descriptor for every container carrying the ownership
// label, including stopped ones. A record that cannot be decoded into a
// config is logged, counted and dropped; the call still succeeds with the
// remaining descriptors.
func (r *DockerRuntime) List(ctx context.Context) ([]*DockerModule, error) {
	listFilters := filters.NewArgs(filters.Arg("label", types.OwnershipLabel))

	summaries, err := r.engine.ContainerList(ctx, container.ListOptions{
		All:     true,
		Size:    true,
		Filters: listFilters,
	})
	metrics.RecordEngineRequest("container_list", err)
	if err != nil {
		return nil, errdefs.NewEngine("list modules", err)
	}

	modules := make([]*DockerModule, 0, len(summaries))
	for _, summary := range summaries {
		module, err := newModuleFromSummary(r.engine, summary)
		if err != nil {
			metrics.ListRecordsSkipped.Inc()
			r.logger.Warn().Str("container_id", summary.ID).Err(err).
				Msg("skipping undecodable container record")
			continue
		}
		modules = append(modules, module)
	}

	metrics.ModulesListed.Set(float64(len(modules)))
	return modules, nil
}

// withOwnershipLabel tags the create payload so List can find the module
// later. A caller-supplied value for the ownership key is left untouched.
func withOwnershipLabel(labels map[string]string) map[string]string {
	out := make(map[string]string, len(labels)+1)
	for key, value := range labels {
		out[key] = value
	}
	if _, ok := out[types.OwnershipLabelKey]; !ok {
		out[types.OwnershipLabelKey] = types.OwnershipLabelValue
	}
	return out
}

// ensureNotEmpty rejects names and ids that are empty after trimming
// whitespace, before any engine call is made.
func ensureNotEmpty(value, what string) error {
	if strings.TrimSpace(value) == "" {
		return errdefs.NewValidation("%s is empty or blank", what)
	}
	return nil
}
