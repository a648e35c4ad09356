/*
roster.go - Roster directory

PURPOSE:
  Read-mostly directory of employees and their designated proxies. The
  directory is a leaf dependency: the interval index and the lifecycle
  manager consult it but it depends on nothing except the store.

ABSENCE HANDLING:
  Lookup returns nil (not an error) for an unknown ID. Proxy chains can
  reference a misconfigured ID, so callers must handle absence
  explicitly rather than relying on a panic or error path.

SEE ALSO:
  - lifecycle.go: Resolves the requester's proxy at submission
  - index.go: Resolves record owners for proxy-assignment queries
*/
package schedule

import "context"

// Roster is the employee directory backed by the employees collection.
type Roster struct {
	store Store
}

// NewRoster creates a roster directory over the given store.
func NewRoster(store Store) *Roster {
	return &Roster{store: store}
}

// List returns the full roster in stored order.
func (r *Roster) List(ctx context.Context) ([]Employee, error) {
	employees, err := r.store.ReadEmployees(ctx)
	if err != nil {
		return nil, readFailed(CollectionEmployees, err)
	}
	return employees, nil
}

// Lookup returns the employee with the given ID, or nil when absent.
func (r *Roster) Lookup(ctx context.Context, id EmployeeID) (*Employee, error) {
	employees, err := r.store.ReadEmployees(ctx)
	if err != nil {
		return nil, readFailed(CollectionEmployees, err)
	}
	for i := range employees {
		if employees[i].ID == id {
			emp := employees[i]
			return &emp, nil
		}
	}
	return nil, nil
}

// ProxyOf returns the designated proxy of the given employee, or "" when
// the employee is unknown or has no proxy configured.
func (r *Roster) ProxyOf(ctx context.Context, id EmployeeID) (EmployeeID, error) {
	emp, err := r.Lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if emp == nil {
		return "", nil
	}
	return emp.ProxyID, nil
}

// Update renames an employee and reassigns their proxy. The roster is
// fixed: employees are edited in place, never added or removed here.
func (r *Roster) Update(ctx context.Context, id EmployeeID, name string, proxyID EmployeeID) (*Employee, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if proxyID == id {
		return nil, &ValidationError{Field: "proxyId", Message: "an employee cannot be their own proxy"}
	}

	employees, err := r.store.ReadEmployees(ctx)
	if err != nil {
		return nil, readFailed(CollectionEmployees, err)
	}

	if proxyID != "" && indexOfEmployee(employees, proxyID) < 0 {
		return nil, &ValidationError{Field: "proxyId", Message: "proxy must reference an existing employee"}
	}

	i := indexOfEmployee(employees, id)
	if i < 0 {
		return nil, notFound("employee", string(id))
	}

	// Full copy first, then persist, then report. The in-memory slice is
	// never mutated before the write succeeds.
	updated := make([]Employee, len(employees))
	copy(updated, employees)
	updated[i].Name = name
	updated[i].ProxyID = proxyID

	if err := r.store.WriteEmployees(ctx, updated); err != nil {
		return nil, writeFailed(CollectionEmployees, err)
	}

	emp := updated[i]
	return &emp, nil
}

func indexOfEmployee(employees []Employee, id EmployeeID) int {
	for i := range employees {
		if employees[i].ID == id {
			return i
		}
	}
	return -1
}
