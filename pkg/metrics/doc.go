/*
Package metrics exposes Prometheus metrics for the Wharf runtime.

Every engine API request is counted by operation and outcome, and listing
reports both the descriptors returned and the records dropped because they
could not be decoded. Metrics are registered at package init; serve them
with Serve, or mount Handler on an existing server:

	go metrics.Serve(":9101")
*/
package metrics
