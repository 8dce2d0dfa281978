package label

import (
	"fmt"
)

// reconciler implements the Reconciler interface
type reconciler struct {
	client APIClient
	opts   Options
}

// NewReconciler creates a new reconciler instance
func NewReconciler(client APIClient) Reconciler {
	return &reconciler{client: client}
}

// Plan fetches the live label set once and computes the ordered operation
// plan from the desired-state document. The snapshot is never refreshed
// mid-batch: later phases trust the recorded success or failure of earlier
// operations rather than re-listing, so out-of-band remote changes during
// a run can go unnoticed. A list failure aborts the whole run; there is no
// partial execution without a baseline.
func (r *reconciler) Plan(cfg *BatchConfig, opts Options) (*Plan, error) {
	r.opts = opts

	live, err := r.client.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	liveSet := make(map[string]bool, len(live))
	for _, l := range live {
		liveSet[l.Name] = true
	}

	plan := &Plan{}

	for _, name := range cfg.Delete {
		if liveSet[name] {
			plan.Deletes = append(plan.Deletes, Operation{Type: OperationDelete, Name: name})
		} else {
			plan.Deletes = append(plan.Deletes, failedOp(name, ErrorTypeNotFound,
				fmt.Sprintf("label %q not found", name)))
		}
	}

	for _, spec := range cfg.New {
		r.planNewSpec(plan, spec, liveSet)
	}

	for _, spec := range cfg.Update {
		plan.Updates = append(plan.Updates, r.planUpdateSpec(spec, liveSet))
	}

	for _, spec := range cfg.Labels {
		r.planTemplateSpec(plan, spec, liveSet)
	}

	return plan, nil
}

// planNewSpec resolves a create-intent spec against the snapshot. The
// per-item skip_if_exists/update_if_exists flags take precedence over the
// run-level SkipExisting option; when neither applies an existing name is
// a conflict.
func (r *reconciler) planNewSpec(plan *Plan, spec NewLabelSpec, live map[string]bool) {
	if !live[spec.Name] {
		plan.Creates = append(plan.Creates, Operation{
			Type:   OperationCreate,
			Name:   spec.Name,
			Create: createRequest(spec),
		})
		return
	}

	switch {
	case spec.SkipIfExists:
		plan.Creates = append(plan.Creates, Operation{
			Type:   OperationSkip,
			Name:   spec.Name,
			Reason: "already exists",
		})
	case spec.UpdateIfExists:
		req := UpdateRequest{Color: &spec.Color}
		if spec.Description != "" {
			req.Description = &spec.Description
		}
		plan.Updates = append(plan.Updates, Operation{
			Type:   OperationUpdate,
			Name:   spec.Name,
			Update: &req,
		})
	case r.opts.SkipExisting:
		plan.Creates = append(plan.Creates, Operation{
			Type:   OperationSkip,
			Name:   spec.Name,
			Reason: "already exists",
		})
	default:
		plan.Creates = append(plan.Creates, failedOp(spec.Name, ErrorTypeAlreadyExists,
			fmt.Sprintf("label %q already exists (set skip_if_exists or update_if_exists, or pass --skip-existing)", spec.Name)))
	}
}

func (r *reconciler) planUpdateSpec(spec UpdateLabelSpec, live map[string]bool) Operation {
	if !live[spec.Name] {
		return failedOp(spec.Name, ErrorTypeNotFound,
			fmt.Sprintf("label %q not found", spec.Name))
	}

	req := UpdateRequest{}
	if spec.NewName != "" {
		req.NewName = &spec.NewName
	}
	if spec.Color != "" {
		req.Color = &spec.Color
	}
	if spec.Description != nil {
		req.Description = spec.Description
	}

	return Operation{Type: OperationUpdate, Name: spec.Name, Update: &req}
}

// planTemplateSpec resolves a template spec. Live labels named in
// update_if_match each become an independent rename to the canonical name;
// a live label already carrying the canonical name is updated in place.
// With no matches the spec degenerates to a create intent when a color is
// present, and to a not-found failure when it is update-only. Matching is
// case-sensitive against the load-time snapshot only.
func (r *reconciler) planTemplateSpec(plan *Plan, spec TemplateLabelSpec, live map[string]bool) {
	var legacy []string
	for _, name := range spec.UpdateIfMatch {
		if name != spec.Name && live[name] {
			legacy = append(legacy, name)
		}
	}

	if len(legacy) == 0 {
		if spec.Color != "" {
			r.planNewSpec(plan, NewLabelSpec{
				Name:           spec.Name,
				Color:          spec.Color,
				Description:    derefOr(spec.Description, ""),
				SkipIfExists:   spec.SkipIfExists,
				UpdateIfExists: spec.UpdateIfExists,
			}, live)
			return
		}

		// Update-only spec: never creates.
		if !live[spec.Name] {
			plan.Updates = append(plan.Updates, failedOp(spec.Name, ErrorTypeNotFound,
				fmt.Sprintf("label %q not found", spec.Name)))
			return
		}
		req := UpdateRequest{Description: spec.Description}
		plan.Updates = append(plan.Updates, Operation{Type: OperationUpdate, Name: spec.Name, Update: &req})
		return
	}

	targets := legacy
	if live[spec.Name] {
		targets = append([]string{spec.Name}, legacy...)
	}

	for _, target := range targets {
		req := UpdateRequest{Description: spec.Description}
		if target != spec.Name {
			name := spec.Name
			req.NewName = &name
		}
		if spec.Color != "" {
			color := spec.Color
			req.Color = &color
		}
		plan.Updates = append(plan.Updates, Operation{Type: OperationUpdate, Name: target, Update: &req})
	}
}

// Apply executes the plan in fixed phase order: deletes, creates, updates.
// Each item runs independently; a failure is recorded and execution moves
// on to the next item. In dry-run mode no gateway mutation is issued and
// every executable item is recorded with the description it would have
// carried for real.
func (r *reconciler) Apply(plan *Plan) *Summary {
	summary := &Summary{DryRun: r.opts.DryRun}

	for _, op := range plan.Items() {
		result := r.applyOperation(op)
		summary.Results = append(summary.Results, result)

		switch result.Status {
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}

	return summary
}

func (r *reconciler) applyOperation(op Operation) OperationResult {
	action := DescribeOperation(op)

	switch op.Type {
	case OperationSkip:
		return OperationResult{Status: StatusSkipped, Action: action, Reason: op.Reason}
	case OperationFail:
		return OperationResult{Status: StatusFailed, Action: action, Err: op.Err}
	}

	if r.opts.DryRun {
		return OperationResult{Status: StatusDryRun, Action: action}
	}

	switch op.Type {
	case OperationDelete:
		if err := r.client.Delete(op.Name); err != nil {
			return OperationResult{Status: StatusFailed, Action: action, Err: err}
		}
		return OperationResult{Status: StatusDeleted, Action: action}
	case OperationCreate:
		if _, err := r.client.Create(*op.Create); err != nil {
			return OperationResult{Status: StatusFailed, Action: action, Err: err}
		}
		return OperationResult{Status: StatusCreated, Action: action}
	case OperationUpdate:
		if _, err := r.client.Update(op.Name, *op.Update); err != nil {
			return OperationResult{Status: StatusFailed, Action: action, Err: err}
		}
		return OperationResult{Status: StatusUpdated, Action: action}
	default:
		return OperationResult{Status: StatusFailed, Action: action,
			Err: NewError(ErrorTypeUnknown, fmt.Sprintf("unsupported operation type: %s", op.Type), nil)}
	}
}

// DescribeOperation renders the one-line action description shared by
// dry-run previews and real-run results.
func DescribeOperation(op Operation) string {
	switch op.Type {
	case OperationDelete:
		return fmt.Sprintf("delete label %q", op.Name)
	case OperationCreate:
		return fmt.Sprintf("create label %q (color %s)", op.Name, op.Create.Color)
	case OperationUpdate:
		if op.Update.NewName != nil {
			return fmt.Sprintf("rename label %q to %q", op.Name, *op.Update.NewName)
		}
		return fmt.Sprintf("update label %q", op.Name)
	case OperationSkip:
		return fmt.Sprintf("skip label %q", op.Name)
	case OperationFail:
		return fmt.Sprintf("process label %q", op.Name)
	default:
		return fmt.Sprintf("process label %q", op.Name)
	}
}

func failedOp(name string, errType ErrorType, message string) Operation {
	return Operation{
		Type:   OperationFail,
		Name:   name,
		Reason: message,
		Err:    NewError(errType, message, nil),
	}
}

func createRequest(spec NewLabelSpec) *CreateRequest {
	req := &CreateRequest{Name: spec.Name, Color: spec.Color}
	if spec.Description != "" {
		req.Description = &spec.Description
	}
	return req
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
