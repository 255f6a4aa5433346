package runtime

import (
	"github.com/docker/docker/api/types/registry"

	"github.com/wharfd/wharf/pkg/errdefs"
	"github.com/wharfd/wharf/pkg/types"
)

// encodeRegistryAuth serializes optional credentials into the engine's
// X-Registry-Auth header form (base64url-encoded JSON). Unset fields are
// omitted from the JSON; nil credentials encode to the empty string, never
// to a JSON null or empty object.
func encodeRegistryAuth(credentials *types.RegistryCredentials) (string, error) {
	if credentials == nil {
		return "", nil
	}

	auth := registry.AuthConfig{
		Username:      credentials.Username,
		Password:      credentials.Password,
		Email:         credentials.Email,
		ServerAddress: credentials.ServerAddress,
	}
	encoded, err := registry.EncodeAuthConfig(auth)
	if err != nil {
		return "", errdefs.NewSerialization(err, "registry credentials")
	}
	return encoded, nil
}
