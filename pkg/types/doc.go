/*
Package types defines the domain model shared by the Wharf runtime packages.

This package contains the vendor-neutral workload description (ModuleSpec),
its engine binding (Config and CreateOptions), registry authentication
(RegistryCredentials) and the ownership-label constants that scope engine
queries to resources Wharf created.

# Core Types

  - ModuleSpec: caller-constructed workload description (name, type tag,
    config, declared environment)
  - Config: image reference plus the opaque engine create payload
  - CreateOptions: the engine-specific create body (process, host, network
    configuration), built from the Docker SDK's own types
  - RegistryCredentials: optional username/password/email/server, each
    independently optional

# Ownership

Wharf tags every container it creates with OwnershipLabel and filters every
listing query by the same label, so an engine shared with other tooling never
leaks foreign containers into Wharf's view.

# Mutation Model

ModuleSpec and Config are immutable from the runtime's point of view. The
runtime never mutates a caller's payload: Config.CloneCreateOptions produces
an independent deep copy and all merges operate on that copy.
*/
package types
