package label

// APIClient defines the interface for remote label operations
type APIClient interface {
	List() ([]Label, error)
	Get(name string) (*Label, error)
	Create(req CreateRequest) (*Label, error)
	Update(name string, req UpdateRequest) (*Label, error)
	Delete(name string) error
}

// Reconciler defines the interface for batch reconciliation
type Reconciler interface {
	Plan(cfg *BatchConfig, opts Options) (*Plan, error)
	Apply(plan *Plan) *Summary
}

// Options carries the per-run flags that influence planning and execution.
// Per-item flags on a spec always take precedence over SkipExisting.
type Options struct {
	DryRun       bool
	SkipExisting bool
}

// OperationType represents the kind of planned operation
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
	// OperationSkip and OperationFail are resolved during planning and
	// never reach the gateway.
	OperationSkip OperationType = "skip"
	OperationFail OperationType = "fail"
)

// Operation is one planned item. Name is the live label the operation
// targets; for creates it is the name to create. Request fields are only
// set for the operation types that use them.
type Operation struct {
	Type   OperationType
	Name   string
	Create *CreateRequest
	Update *UpdateRequest
	Reason string // skip reason or planning failure detail
	Err    *Error // planning failure, OperationFail only
}

// Plan is the ordered outcome of the planning phase. Execution order is
// fixed: Deletes, then Creates, then Updates, preserving input document
// order within each phase. Skips and planning failures sit in the phase
// where the item would have executed so dry-run previews line up with
// real runs.
type Plan struct {
	Deletes []Operation
	Creates []Operation
	Updates []Operation
}

// Items returns all planned operations in execution order.
func (p *Plan) Items() []Operation {
	items := make([]Operation, 0, len(p.Deletes)+len(p.Creates)+len(p.Updates))
	items = append(items, p.Deletes...)
	items = append(items, p.Creates...)
	items = append(items, p.Updates...)
	return items
}

// ResultStatus represents the outcome of one attempted operation
type ResultStatus string

const (
	StatusCreated ResultStatus = "created"
	StatusUpdated ResultStatus = "updated"
	StatusDeleted ResultStatus = "deleted"
	StatusSkipped ResultStatus = "skipped"
	StatusDryRun  ResultStatus = "dry-run"
	StatusFailed  ResultStatus = "failed"
)

// OperationResult is the tagged per-item outcome. Action carries the same
// textual description in dry-run and real mode so previews are faithful.
type OperationResult struct {
	Status ResultStatus
	Action string
	Reason string // StatusSkipped only
	Err    error  // StatusFailed only
}

// Summary aggregates per-item results for one batch run.
type Summary struct {
	Results   []OperationResult
	Succeeded int
	Skipped   int
	Failed    int
	DryRun    bool
}

// HasFailures reports whether any item in the batch failed.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}
