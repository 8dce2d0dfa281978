// Package label provides GitHub label management functionality for biao.
// It implements declarative label configuration through TOML files and
// provides reconciliation capabilities to ensure the repository label set
// matches desired state.
//
// The package includes:
// - APIClient interface backed by the gh CLI
// - Reconciler interface for batch plan/apply runs
// - Configuration models for desired-state documents
// - Type definitions for label resources
package label
