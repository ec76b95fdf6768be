// Package models defines data structures shared across the application.
package models

// Filter field names understood by the Bugzilla search adapter.
const (
	FieldProduct      = "product"
	FieldComponent    = "component"
	FieldSubComponent = "sub_component"
	FieldStatus       = "status"
)

// QuerySpec maps a Bugzilla filter field name to the value it must match.
// A QuerySpec is built once per invocation and not modified afterwards.
type QuerySpec map[string]string

// Product returns the product filter value, or an empty string if unset.
func (q QuerySpec) Product() string { return q[FieldProduct] }

// Component returns the component filter value, or an empty string if unset.
func (q QuerySpec) Component() string { return q[FieldComponent] }

// SubComponent returns the sub-component filter value, or an empty string if unset.
func (q QuerySpec) SubComponent() string { return q[FieldSubComponent] }

// Status returns the status filter value, or an empty string if unset.
func (q QuerySpec) Status() string { return q[FieldStatus] }

// Bug represents a Bugzilla bug with the fields the report prints.
type Bug struct {
	// ID is the Bugzilla bug number (e.g., 1873425)
	ID int

	// Product is the product the bug is filed against
	Product string

	// AssignedTo is the login of the current assignee
	AssignedTo string

	// Component is the component, or a comma separated list when the bug has several
	Component string

	// Status is the bug status (e.g., "NEW", "ASSIGNED")
	Status string

	// Resolution is empty for open bugs
	Resolution string

	// Summary is the one-line bug title
	Summary string
}
