/*
Package runtime adapts Wharf module lifecycle operations onto the Docker
Engine API.

The runtime package translates vendor-neutral module specifications into
engine-specific requests. It merges environment variables with override
precedence, injects the configured network attachment without clobbering
caller intent, encodes optional registry credentials into the engine's
credential-header format, and reconstructs typed module descriptors from the
engine's listing output while tolerating malformed records.

# Architecture

	orchestrator
	    │
	    ▼
	DockerRuntime ── ModuleRuntime + ModuleRegistry capabilities
	    │
	    ├── mergeEnv            spec env wins over payload env on collision
	    ├── attachNetwork       insert-if-absent endpoint injection
	    ├── encodeRegistryAuth  X-Registry-Auth header encoding
	    ├── newModuleFromSummary  descriptor assembly from raw records
	    │
	    ▼
	EngineClient (Docker SDK) ──► Docker Engine REST API

# Scope

The runtime executes exactly the operation requested and reports the
engine's result. It holds no desired state, caches no descriptors and never
retries; retry policy and reconciliation belong to the orchestrator above
it. The only configuration it carries across calls is the immutable network
id applied at construction.

# Validation

Every name and id argument is checked for emptiness after whitespace
trimming before any engine traffic, and Create rejects specs whose type tag
is not "docker". These failures surface as errdefs.ValidationError with zero
engine calls issued.

# Concurrency

The Docker SDK client synchronizes its own transport, and DockerRuntime adds
no mutable shared state, so callers may issue operations concurrently,
including against the same target id; such races resolve at the engine.
Cancellation follows the supplied context, but an abandoned call is not
guaranteed to be aborted at the engine. The stop/restart grace period is a
protocol parameter sent to the engine, not a client-side deadline.

# Usage

	rt, err := runtime.NewDockerRuntime("unix:///var/run/docker.sock")
	if err != nil {
		return err
	}
	defer rt.Close()
	rt = rt.WithNetworkID("edge-net")

	err = rt.Registry().Pull(ctx, "nginx:latest", nil)
	err = rt.Create(ctx, spec)
	err = rt.Start(ctx, spec.Name)
	modules, err := rt.List(ctx)
*/
package runtime
