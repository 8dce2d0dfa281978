package label

// Label mirrors a label as returned by the GitHub API. The remote system
// owns this state; the gateway only decodes it.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ID          int64  `json:"id"`
	NodeID      string `json:"node_id"`
	Default     bool   `json:"default"`
}

// CreateRequest carries the fields sent when creating a label.
type CreateRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}

// UpdateRequest carries the fields sent when updating a label. Nil fields
// are omitted from the request so the remote value is left untouched.
type UpdateRequest struct {
	NewName     *string `json:"new_name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the request would change nothing.
func (r UpdateRequest) IsEmpty() bool {
	return r.NewName == nil && r.Color == nil && r.Description == nil
}
