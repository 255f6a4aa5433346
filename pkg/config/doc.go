/*
Package config loads Wharf's YAML configuration surfaces.

Two documents live here: the agent configuration (engine endpoint, network
attachment, logging, metrics) and the module manifest, a small
apiVersion/kind/metadata/spec resource describing one workload:

	apiVersion: wharf/v1
	kind: Module
	metadata:
	  name: edge-proxy
	spec:
	  image: nginx:latest
	  env:
	    LISTEN_PORT: "8080"

Omitted agent settings fall back to Default(); manifests default their type
tag to "docker".
*/
package config
