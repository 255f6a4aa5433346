package types

import (
	"encoding/json"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"

	"github.com/wharfd/wharf/pkg/errdefs"
)

const (
	// ModuleTypeDocker is the only module type this runtime materializes.
	ModuleTypeDocker = "docker"

	// OwnershipLabelKey and OwnershipLabelValue tag every engine resource
	// created by Wharf so listing can be scoped to this orchestration domain.
	OwnershipLabelKey   = "io.wharf.owner"
	OwnershipLabelValue = "wharf.agent"

	// OwnershipLabel is the key=value form the engine's label filter expects.
	OwnershipLabel = OwnershipLabelKey + "=" + OwnershipLabelValue
)

// CreateOptions is the engine-specific payload describing how to instantiate
// a container: process config, host config and network attachments.
type CreateOptions struct {
	Config           *container.Config         `json:"config,omitempty"`
	HostConfig       *container.HostConfig     `json:"hostConfig,omitempty"`
	NetworkingConfig *network.NetworkingConfig `json:"networkingConfig,omitempty"`
}

// Config pairs an image reference with the create payload for that image.
type Config struct {
	Image         string
	CreateOptions CreateOptions
}

// NewConfig builds a Config, rejecting an empty image reference.
func NewConfig(image string, opts CreateOptions) (*Config, error) {
	if strings.TrimSpace(image) == "" {
		return nil, errdefs.NewValidation("image reference is empty or blank")
	}
	return &Config{Image: image, CreateOptions: opts}, nil
}

// CloneCreateOptions returns an independent deep copy of the create payload,
// so the runtime can mutate a working copy without aliasing caller state.
// The payload types are the engine SDK's own JSON-tagged structs, so a JSON
// round trip is a faithful copy.
func (c *Config) CloneCreateOptions() (CreateOptions, error) {
	data, err := json.Marshal(c.CreateOptions)
	if err != nil {
		return CreateOptions{}, errdefs.NewSerialization(err, "create options")
	}
	var out CreateOptions
	if err := json.Unmarshal(data, &out); err != nil {
		return CreateOptions{}, errdefs.NewSerialization(err, "create options")
	}
	return out, nil
}

// ModuleSpec is the vendor-neutral description of a workload handed to the
// runtime by the orchestrator. Env entries override any environment already
// present in the create payload on key collision.
type ModuleSpec struct {
	Name   string
	Type   string
	Config *Config
	Env    map[string]string
}

// RegistryCredentials carries optional registry authentication. Every field
// is independently optional; an empty string means unset.
type RegistryCredentials struct {
	Username      string
	Password      string
	Email         string
	ServerAddress string
}
