// Package resilience provides retry and polling primitives used by the SDK.
//
// This package includes:
//   - Retry: retries failed operations with exponential backoff and jitter
//   - Poll: drives a repeated observation loop at a caller-chosen cadence
//
// Nothing retries by default. The transport opts in through its config, and
// job polling takes an explicit PollConfig because the API contract leaves
// the cadence to the caller.
package resilience
