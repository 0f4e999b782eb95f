// Package observability provides Prometheus instrumentation for Arbor engines,
// wired in through domain.LifecycleHooks.
package observability
