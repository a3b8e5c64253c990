package domain

// WorkflowState is the editorial lifecycle stage of an indicator.
// Observations carry the state of their indicator at the time they were written.
type WorkflowState string

const (
	WorkflowDraft     WorkflowState = "draft"
	WorkflowInReview  WorkflowState = "in_review"
	WorkflowValidated WorkflowState = "validated"
	WorkflowPublished WorkflowState = "published"
	WorkflowArchived  WorkflowState = "archived"
)

func (s WorkflowState) String() string { return string(s) }

func (s WorkflowState) IsValid() bool {
	switch s {
	case WorkflowDraft, WorkflowInReview, WorkflowValidated, WorkflowPublished, WorkflowArchived:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s WorkflowState) IsTerminal() bool {
	return len(workflowTransitions[s]) == 0
}

// Capability names an authorization capability checked by the caller before a transition.
type Capability string

const (
	CapabilitySubmit   Capability = "indicator:submit"
	CapabilityValidate Capability = "indicator:validate"
	CapabilityPublish  Capability = "indicator:publish"
	CapabilityArchive  Capability = "indicator:archive"
)

// workflowTransitions is the closed transition table. Anything not listed is rejected.
var workflowTransitions = map[WorkflowState]map[WorkflowState]Capability{
	WorkflowDraft: {
		WorkflowInReview: CapabilitySubmit,
	},
	WorkflowInReview: {
		WorkflowValidated: CapabilityValidate,
	},
	WorkflowValidated: {
		WorkflowPublished: CapabilityPublish,
		WorkflowArchived:  CapabilityArchive,
	},
	WorkflowPublished: {
		WorkflowArchived: CapabilityArchive,
	},
	WorkflowArchived: {},
}

// CanTransition reports whether the workflow allows from -> to.
func CanTransition(from, to WorkflowState) bool {
	_, ok := workflowTransitions[from][to]
	return ok
}

// RequiredCapability returns the capability an actor needs to perform from -> to.
// ok is false when the transition does not exist.
func RequiredCapability(from, to WorkflowState) (Capability, bool) {
	c, ok := workflowTransitions[from][to]
	return c, ok
}

// NextStates lists the states reachable from s in a single transition.
func NextStates(s WorkflowState) []WorkflowState {
	order := []WorkflowState{WorkflowDraft, WorkflowInReview, WorkflowValidated, WorkflowPublished, WorkflowArchived}
	next := make([]WorkflowState, 0, 2)
	for _, candidate := range order {
		if CanTransition(s, candidate) {
			next = append(next, candidate)
		}
	}
	return next
}

// importTransitions is the closed transition table of an import batch.
// Every validation run passes through validating; validating -> validating
// lets an interrupted run save its partial report and be re-run.
var importTransitions = map[ImportStatus][]ImportStatus{
	ImportStatusUploaded:   {ImportStatusValidating},
	ImportStatusValidating: {ImportStatusValidating, ImportStatusApproved, ImportStatusRejected},
	ImportStatusApproved:   {ImportStatusProcessed, ImportStatusRejected},
	ImportStatusRejected:   {},
	ImportStatusProcessed:  {},
}

// CanTransitionImport reports whether an import may move from -> to.
func CanTransitionImport(from, to ImportStatus) bool {
	for _, s := range importTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
