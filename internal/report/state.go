package report

// Phase describes how far a conversation has progressed toward a generated
// report command.
type Phase string

const (
	// PhaseCollecting means fewer than two date tokens are known so far.
	PhaseCollecting Phase = "collecting"
	// PhaseComplete means two dates are known and a command can be composed.
	PhaseComplete Phase = "complete"
)

// State is the conversation state derived from message history. It is never
// persisted; callers recompute it from the full ordered history on every
// request.
type State struct {
	Phase Phase
	Dates DatePair // valid only when Phase == PhaseComplete
}

// StateOf derives the conversation state from ordered message bodies
// (oldest first). It is a pure function of its input.
func StateOf(bodies []string) State {
	pair, ok := ExtractDatePair(bodies)
	if !ok {
		return State{Phase: PhaseCollecting}
	}
	return State{Phase: PhaseComplete, Dates: pair}
}

// Command returns the composed report command for a complete state, or
// ("", false) while still collecting.
func (s State) Command() (string, bool) {
	if s.Phase != PhaseComplete {
		return "", false
	}
	return ComposeCommand(s.Dates.Start, s.Dates.End), true
}
