package config

import (
	"fmt"
	"os"

	"github.com/docker/docker/api/types/container"
	"gopkg.in/yaml.v3"

	"github.com/wharfd/wharf/pkg/types"
)

// ModuleManifest is the YAML resource accepted by `wharf module create -f`.
type ModuleManifest struct {
	APIVersion string           `yaml:"apiVersion"`
	Kind       string           `yaml:"kind"`
	Metadata   ManifestMetadata `yaml:"metadata"`
	Spec       ManifestSpec     `yaml:"spec"`
}

// ManifestMetadata names and labels the module.
type ManifestMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// ManifestSpec carries the workload description.
type ManifestSpec struct {
	Type  string            `yaml:"type,omitempty"`
	Image string            `yaml:"image"`
	Env   map[string]string `yaml:"env,omitempty"`
}

// LoadModuleManifest reads a module manifest and converts it into a
// ModuleSpec. The type tag defaults to "docker" when omitted; the name may
// be empty and is filled in by the caller.
func LoadModuleManifest(path string) (*types.ModuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest ModuleManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if manifest.Kind != "Module" {
		return nil, fmt.Errorf("unsupported resource kind: %s", manifest.Kind)
	}

	var opts types.CreateOptions
	if len(manifest.Metadata.Labels) > 0 {
		opts.Config = &container.Config{Labels: manifest.Metadata.Labels}
	}

	cfg, err := types.NewConfig(manifest.Spec.Image, opts)
	if err != nil {
		return nil, err
	}

	moduleType := manifest.Spec.Type
	if moduleType == "" {
		moduleType = types.ModuleTypeDocker
	}

	return &types.ModuleSpec{
		Name:   manifest.Metadata.Name,
		Type:   moduleType,
		Config: cfg,
		Env:    manifest.Spec.Env,
	}, nil
}
