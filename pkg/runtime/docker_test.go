package runtime

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharf/pkg/errdefs"
	"github.com/wharfd/wharf/pkg/types"
)

// fakeEngine records every call made through the EngineClient interface so
// tests can assert on both traffic and payloads without a real engine.
type fakeEngine struct {
	calls int

	pullAuth           string
	imageRemoveOptions image.RemoveOptions

	createName       string
	createConfig     *container.Config
	createHost       *container.HostConfig
	createNetworking *network.NetworkingConfig

	stopOptions    container.StopOptions
	restartOptions container.StopOptions
	removeOptions  container.RemoveOptions
	listOptions    container.ListOptions

	summaries []container.Summary
	err       error
}

func (f *fakeEngine) ImagePull(_ context.Context, _ string, options image.PullOptions) (io.ReadCloser, error) {
	f.calls++
	f.pullAuth = options.RegistryAuth
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeEngine) ImageRemove(_ context.Context, _ string, options image.RemoveOptions) ([]image.DeleteResponse, error) {
	f.calls++
	f.imageRemoveOptions = options
	return nil, f.err
}

func (f *fakeEngine) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig,
	networkingConfig *network.NetworkingConfig, _ *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	f.calls++
	f.createName = containerName
	f.createConfig = config
	f.createHost = hostConfig
	f.createNetworking = networkingConfig
	return container.CreateResponse{ID: "c1"}, f.err
}

func (f *fakeEngine) ContainerStart(_ context.Context, _ string, _ container.StartOptions) error {
	f.calls++
	return f.err
}

func (f *fakeEngine) ContainerStop(_ context.Context, _ string, options container.StopOptions) error {
	f.calls++
	f.stopOptions = options
	return f.err
}

func (f *fakeEngine) ContainerRestart(_ context.Context, _ string, options container.StopOptions) error {
	f.calls++
	f.restartOptions = options
	return f.err
}

func (f *fakeEngine) ContainerRemove(_ context.Context, _ string, options container.RemoveOptions) error {
	f.calls++
	f.removeOptions = options
	return f.err
}

func (f *fakeEngine) ContainerList(_ context.Context, options container.ListOptions) ([]container.Summary, error) {
	f.calls++
	f.listOptions = options
	return f.summaries, f.err
}

func (f *fakeEngine) Close() error { return nil }

func newTestRuntime(engine EngineClient) *DockerRuntime {
	return &DockerRuntime{engine: engine}
}

func TestNewDockerRuntimeUnsupportedScheme(t *testing.T) {
	_, err := NewDockerRuntime("foo:///this/is/not/valid")
	require.Error(t, err)
	assert.True(t, errdefs.IsConfiguration(err))
}

func TestNewDockerRuntimeMissingSocket(t *testing.T) {
	_, err := NewDockerRuntime("unix:///this/file/does/not/exist")
	require.Error(t, err)
	assert.True(t, errdefs.IsConfiguration(err))
}

func TestNewDockerRuntimeUnixSocket(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "engine.sock")
	require.NoError(t, os.WriteFile(socket, nil, 0o600))

	rt, err := NewDockerRuntime("unix://" + socket)
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, socket, rt.BasePath())
}

func TestNewDockerRuntimeTCP(t *testing.T) {
	rt, err := NewDockerRuntime("tcp://localhost:2375")
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, "tcp://localhost:2375", rt.BasePath())
}

func TestEmptyArgumentsFailWithoutEngineCalls(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		op   func(*DockerRuntime, string) error
	}{
		{"pull", func(r *DockerRuntime, v string) error { return r.Pull(ctx, v, nil) }},
		{"remove image", func(r *DockerRuntime, v string) error { return r.RemoveImage(ctx, v) }},
		{"start", func(r *DockerRuntime, v string) error { return r.Start(ctx, v) }},
		{"stop", func(r *DockerRuntime, v string) error { return r.Stop(ctx, v) }},
		{"restart", func(r *DockerRuntime, v string) error { return r.Restart(ctx, v) }},
		{"remove", func(r *DockerRuntime, v string) error { return r.Remove(ctx, v) }},
	}

	blanks := map[string]string{"empty": "", "whitespace": "     "}

	for _, tt := range tests {
		for label, arg := range blanks {
			t.Run(tt.name+"/"+label, func(t *testing.T) {
				engine := &fakeEngine{}
				err := tt.op(newTestRuntime(engine), arg)
				require.Error(t, err)
				assert.True(t, errdefs.IsValidation(err))
				assert.Zero(t, engine.calls, "no engine call should be issued")
			})
		}
	}
}

func TestCreateRejectsForeignModuleType(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)

	cfg, err := types.NewConfig("nginx:latest", types.CreateOptions{})
	require.NoError(t, err)

	err = rt.Create(context.Background(), types.ModuleSpec{
		Name:   "m1",
		Type:   "not_docker",
		Config: cfg,
	})
	require.Error(t, err)
	assert.True(t, errdefs.IsValidation(err))
	assert.Zero(t, engine.calls)
}

func TestCreateMergesEnvironmentAndNetwork(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine).WithNetworkID("edge-net")

	cfg, err := types.NewConfig("nginx:latest", types.CreateOptions{
		Config: &container.Config{
			Env:    []string{"k1=v1", "k2=v2"},
			Labels: map[string]string{"tier": "edge"},
		},
		NetworkingConfig: &network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				"other-net": {},
			},
		},
	})
	require.NoError(t, err)

	err = rt.Create(context.Background(), types.ModuleSpec{
		Name:   "m1",
		Type:   types.ModuleTypeDocker,
		Config: cfg,
		Env:    map[string]string{"k2": "v02", "k3": "v3"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, engine.calls)

	assert.Equal(t, "m1", engine.createName)
	assert.Equal(t, "nginx:latest", engine.createConfig.Image)
	assert.ElementsMatch(t, []string{"k1=v1", "k2=v02", "k3=v3"}, engine.createConfig.Env)

	require.NotNil(t, engine.createNetworking)
	assert.Contains(t, engine.createNetworking.EndpointsConfig, "edge-net")
	assert.Contains(t, engine.createNetworking.EndpointsConfig, "other-net")

	assert.Equal(t, types.OwnershipLabelValue, engine.createConfig.Labels[types.OwnershipLabelKey])
	assert.Equal(t, "edge", engine.createConfig.Labels["tier"])
}

func TestCreateDoesNotMutateCallerPayload(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine).WithNetworkID("edge-net")

	cfg, err := types.NewConfig("nginx:latest", types.CreateOptions{
		Config: &container.Config{Env: []string{"k1=v1"}},
	})
	require.NoError(t, err)

	err = rt.Create(context.Background(), types.ModuleSpec{
		Name:   "m1",
		Type:   types.ModuleTypeDocker,
		Config: cfg,
		Env:    map[string]string{"k1": "override"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"k1=v1"}, cfg.CreateOptions.Config.Env)
	assert.Empty(t, cfg.CreateOptions.Config.Image)
	assert.NotContains(t, cfg.CreateOptions.Config.Labels, types.OwnershipLabelKey)
	assert.Nil(t, cfg.CreateOptions.NetworkingConfig)
}

func TestCreateWithoutConfiguredNetwork(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)

	cfg, err := types.NewConfig("nginx:latest", types.CreateOptions{})
	require.NoError(t, err)

	err = rt.Create(context.Background(), types.ModuleSpec{
		Name:   "m1",
		Type:   types.ModuleTypeDocker,
		Config: cfg,
	})
	require.NoError(t, err)
	assert.Nil(t, engine.createNetworking, "network attachment should be a no-op")
}

func TestStopAndRestartCarryGracePeriod(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)
	ctx := context.Background()

	require.NoError(t, rt.Stop(ctx, "m1"))
	require.NotNil(t, engine.stopOptions.Timeout)
	assert.Equal(t, 10, *engine.stopOptions.Timeout)

	require.NoError(t, rt.Restart(ctx, "m1"))
	require.NotNil(t, engine.restartOptions.Timeout)
	assert.Equal(t, 10, *engine.restartOptions.Timeout)
}

func TestRemoveForcesCleanup(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)

	require.NoError(t, rt.Remove(context.Background(), "m1"))
	assert.True(t, engine.removeOptions.Force)
	assert.True(t, engine.removeOptions.RemoveVolumes)
	assert.True(t, engine.removeOptions.RemoveLinks)
}

func TestRemoveImageFlags(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)

	require.NoError(t, rt.RemoveImage(context.Background(), "nginx:latest"))
	assert.False(t, engine.imageRemoveOptions.Force)
	assert.True(t, engine.imageRemoveOptions.PruneChildren)
}

func TestPullEncodesCredentials(t *testing.T) {
	engine := &fakeEngine{}
	rt := newTestRuntime(engine)

	err := rt.Pull(context.Background(), "nginx:latest", &types.RegistryCredentials{Username: "edge"})
	require.NoError(t, err)
	assert.NotEmpty(t, engine.pullAuth)

	err = rt.Pull(context.Background(), "nginx:latest", nil)
	require.NoError(t, err)
	assert.Empty(t, engine.pullAuth, "absent credentials should send an empty header")
}

func TestListAssemblesDescriptors(t *testing.T) {
	engine := &fakeEngine{
		summaries: []container.Summary{
			{
				ID:     "c1",
				Names:  []string{"/mod1"},
				Image:  "nginx:latest",
				Labels: map[string]string{types.OwnershipLabelKey: types.OwnershipLabelValue},
			},
			{
				// malformed: no image, config cannot be derived
				ID:    "c2",
				Names: []string{"/mod2"},
			},
			{
				ID:    "c3",
				Image: "redis:7",
			},
			{
				// malformed: name strips to nothing
				ID:    "c4",
				Names: []string{"/"},
				Image: "redis:7",
			},
		},
	}
	rt := newTestRuntime(engine)

	modules, err := rt.List(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 2, "malformed records should be dropped, not fail the call")

	assert.Equal(t, "mod1", modules[0].Name())
	assert.Equal(t, types.ModuleTypeDocker, modules[0].Type())
	assert.Equal(t, "nginx:latest", modules[0].Config().Image)
	assert.Equal(t, types.OwnershipLabelValue,
		modules[0].Config().CreateOptions.Config.Labels[types.OwnershipLabelKey])

	assert.Equal(t, "Unknown", modules[1].Name(), "nameless record gets the sentinel name")

	assert.True(t, engine.listOptions.All)
	assert.True(t, engine.listOptions.Size)
	assert.Equal(t, []string{types.OwnershipLabel}, engine.listOptions.Filters.Get("label"))
}

func TestListEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: assert.AnError}
	rt := newTestRuntime(engine)

	_, err := rt.List(context.Background())
	require.Error(t, err)
	assert.True(t, errdefs.IsEngine(err))
}

func TestRegistryReturnsSameInstance(t *testing.T) {
	rt := newTestRuntime(&fakeEngine{})
	assert.Same(t, rt, rt.Registry().(*DockerRuntime))
}
