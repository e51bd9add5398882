package domain

// Event names a lifecycle extension point fired by the host runtime.
type Event string

const (
	// EventPreDependenciesSolving fires before the solver runs; handlers may add pins to the request.
	EventPreDependenciesSolving Event = "pre-dependencies-solving"
	// EventPostDependenciesSolving fires once every package has been handed to its installer.
	EventPostDependenciesSolving Event = "post-dependencies-solving"
)

// Operation records the install destination chosen for a single package.
type Operation struct {
	Package Package
	Path    string
}

// UnsatisfiedPin describes a pinned request the candidate packages could not fulfil.
type UnsatisfiedPin struct {
	Request InstallRequest
	// Found is the normalized version of the candidate, empty when the package is missing entirely.
	Found string
}

// Result is what the host runtime produced for a resolution cycle.
type Result struct {
	Operations  []Operation
	Unsatisfied []UnsatisfiedPin
	Skipped     []Package
}

// SolveEvent is the payload passed to lifecycle handlers.
// Result is nil for EventPreDependenciesSolving.
type SolveEvent struct {
	Name    Event
	Request *Request
	Result  *Result
}
