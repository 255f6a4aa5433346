package runtime

import "github.com/docker/docker/api/types/network"

// attachNetwork inserts networkID into the endpoints mapping with default
// endpoint settings, only if no entry exists for that key. A pre-existing
// entry for networkID is never replaced, so applying this twice is the same
// as applying it once. The input config is not mutated.
func attachNetwork(cfg *network.NetworkingConfig, networkID string) *network.NetworkingConfig {
	out := &network.NetworkingConfig{
		EndpointsConfig: make(map[string]*network.EndpointSettings),
	}
	if cfg != nil {
		for name, endpoint := range cfg.EndpointsConfig {
			out.EndpointsConfig[name] = endpoint
		}
	}
	if _, ok := out.EndpointsConfig[networkID]; !ok {
		out.EndpointsConfig[networkID] = &network.EndpointSettings{}
	}
	return out
}
