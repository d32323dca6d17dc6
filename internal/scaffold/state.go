package scaffold

// State is a phase of a run. Transitions are logged at debug level.
type State string

const (
	StatePrompting      State = "Prompting"
	StateExistenceCheck State = "ExistenceCheck"
	StateScaffolding    State = "Scaffolding"
	StateInstalling     State = "Installing"
	StateStylingInit    State = "StylingInit"
	StateTemplates      State = "Templates"
	StateVCSInit        State = "VCSInit"
	StateDone           State = "Done"
	StateCancelled      State = "Cancelled"
	StateFailed         State = "Failed"
)

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	switch s {
	case StateDone, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}
