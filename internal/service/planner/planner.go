// Package planner turns a classified action into a bounded, ordered
// list of catalog lookups.
package planner

import (
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/analysis/request"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/session"
)

// Build produces the plan for one action. greet and clarify yield an
// empty plan; the orchestrator answers those without catalog calls.
// The caller holds the session lock.
func Build(decision request.Decision, resolved request.Resolved, sess *session.Session) outfit.Plan {
	switch decision.Action {
	case outfit.ActionNewOutfit:
		return buildNewOutfit(resolved)
	case outfit.ActionReplace:
		return buildReplace(decision.Slot, resolved, sess)
	case outfit.ActionShowMore:
		return buildShowMore(decision.Slot, resolved, sess)
	default:
		return nil
	}
}

func baseParams(slot outfit.Slot, resolved request.Resolved) outfit.SearchParams {
	return outfit.SearchParams{
		Subcategory: slot.Subcategory(),
		Genre:       resolved.Genre,
		Keyword:     resolved.Keyword,
		MinPrice:    resolved.MinPrice,
		MaxPrice:    resolved.MaxPrice,
		Limit:       outfit.MaxLimit,
	}
}

func buildNewOutfit(resolved request.Resolved) outfit.Plan {
	slots := resolved.Slots
	if len(slots) > outfit.MaxPlanSlots {
		slots = slots[:outfit.MaxPlanSlots]
	}

	plan := make(outfit.Plan, 0, len(slots))
	for _, slot := range slots {
		plan = append(plan, outfit.PlanStep{Slot: slot, Params: baseParams(slot, resolved)})
	}
	return plan
}

// buildReplace emits exactly one step for the named slot. Previous
// search parameters are reused with the keyword substituted when the
// message carried a new theme word.
func buildReplace(slot outfit.Slot, resolved request.Resolved, sess *session.Session) outfit.Plan {
	params, ok := sess.LastParams[slot]
	if !ok {
		params = baseParams(slot, resolved)
	} else if resolved.Keyword != "" {
		params.Keyword = resolved.Keyword
	}
	return outfit.Plan{{Slot: slot, Params: params}}
}

// buildShowMore reuses the slot's last parameters unchanged; skipping
// already-seen items is the orchestrator's job, via the rotation index.
func buildShowMore(slot outfit.Slot, resolved request.Resolved, sess *session.Session) outfit.Plan {
	params, ok := sess.LastParams[slot]
	if !ok {
		params = baseParams(slot, resolved)
	}
	return outfit.Plan{{Slot: slot, Params: params}}
}
