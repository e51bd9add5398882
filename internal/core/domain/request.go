package domain

import "slices"

// InstallRequest is an explicit request to install a package under a constraint.
type InstallRequest struct {
	Name       string
	Constraint Constraint
}

// Request collects the install requests handed to the dependency solver.
// The zero value is ready to use.
type Request struct {
	installs []InstallRequest
}

// NewRequest creates an empty Request.
func NewRequest() *Request {
	return &Request{}
}

// Install pins name to the given constraint. A second pin for the same name replaces the first.
func (r *Request) Install(name string, constraint Constraint) {
	for i := range r.installs {
		if r.installs[i].Name == name {
			r.installs[i].Constraint = constraint
			return
		}
	}
	r.installs = append(r.installs, InstallRequest{Name: name, Constraint: constraint})
}

// Installs returns the pinned requests in insertion order.
func (r *Request) Installs() []InstallRequest {
	return slices.Clone(r.installs)
}
