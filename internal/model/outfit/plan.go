package outfit

// Action is the classified user intent that drives planning.
type Action string

const (
	ActionGreet     Action = "greet"
	ActionNewOutfit Action = "new_outfit"
	ActionReplace   Action = "replace"
	ActionShowMore  Action = "show_more"
	ActionClarify   Action = "clarify"
)

// ParseAction matches a raw string against the action enumeration.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionGreet, ActionNewOutfit, ActionReplace, ActionShowMore, ActionClarify:
		return Action(raw), true
	}
	return "", false
}

// MaxPlanSlots caps how many slots a single new-outfit build touches.
const MaxPlanSlots = 5

// PlanStep is one catalog lookup bound to the slot it fills.
type PlanStep struct {
	Slot   Slot
	Params SearchParams
}

// Plan is the ordered list of lookups satisfying one user action. It is
// produced and consumed within a single request.
type Plan []PlanStep
