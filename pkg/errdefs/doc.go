/*
Package errdefs defines the error taxonomy shared by the Wharf runtime packages.

Four classes cover every failure the runtime can surface:

  - ValidationError: bad caller input (empty id, wrong module type), raised
    before any engine traffic
  - ConfigurationError: unusable engine endpoint, raised at construction
  - EngineError: any non-success engine response or transport failure
  - SerializationError: failure encoding credentials or payloads

Callers classify with the Is* helpers, which follow errors.As through any
fmt.Errorf %w wrapping:

	if err := rt.Start(ctx, id); errdefs.IsValidation(err) {
		// reject the request, do not retry
	}

None of these classes imply a retry; the runtime never retries on its own.
*/
package errdefs
