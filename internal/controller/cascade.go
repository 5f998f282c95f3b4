package controller

// MutationKind identifies a state-changing operation.
type MutationKind string

const (
	MutationStartSession       MutationKind = "start_session"
	MutationEndSession         MutationKind = "end_session"
	MutationCreateInterruption MutationKind = "create_interruption"
	MutationSeedDemo           MutationKind = "seed_demo"
)

// Cascade lists what must be refetched after a mutation succeeds.
// Detail means the selected session's interruptions are reloaded first.
// Reload means a full LoadAll replaces the view-level refresh.
type Cascade struct {
	Views  []View
	Detail bool
	Reload bool
}

// Every write can move every aggregate, so each kind refreshes all range views.
var cascades = map[MutationKind]Cascade{
	MutationStartSession: {
		Views: RangeViews(),
	},
	MutationEndSession: {
		Views: RangeViews(),
	},
	MutationCreateInterruption: {
		Views:  RangeViews(),
		Detail: true,
	},
	MutationSeedDemo: {
		Reload: true,
	},
}

// CascadeFor returns the refresh set for kind. Unknown kinds refresh nothing.
func CascadeFor(kind MutationKind) Cascade {
	return cascades[kind]
}
