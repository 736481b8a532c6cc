package request

import (
	"regexp"
	"strings"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

// SessionView is the read-only slice of session state the classifier
// needs: which slots are filled and which one was touched last.
type SessionView struct {
	FilledSlots []outfit.Slot
	LastSlot    outfit.Slot
}

// HasOutfit reports whether any slot is currently filled.
func (v SessionView) HasOutfit() bool {
	return len(v.FilledSlots) > 0
}

// Filled reports whether the given slot currently holds an item.
func (v SessionView) Filled(slot outfit.Slot) bool {
	for _, s := range v.FilledSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Decision is the classification result. Slot is set for replace and
// show_more; Keyword and Reply are optional extractions a model-backed
// classifier may provide.
type Decision struct {
	Action  outfit.Action
	Slot    outfit.Slot
	Keyword string
	Reply   string
}

var greetingPattern = regexp.MustCompile(`^\s*(hi|hiya|hello|hey|yo|sup|howdy|good\s+(morning|afternoon|evening))\b`)

var showMoreWords = []string{"more", "another", "next", "other options"}

var replaceWords = []string{"change", "replace", "swap", "different"}

// Classify maps a prompt plus session state to an action using the
// fixed priority rules. It is total: every input yields a valid action,
// and the same input always yields the same decision.
func Classify(text string, view SessionView) Decision {
	lower := strings.ToLower(strings.TrimSpace(text))

	if greetingPattern.MatchString(lower) && !view.HasOutfit() {
		return Decision{Action: outfit.ActionGreet}
	}

	slot, slotNamed := DetectSlot(lower)

	if containsAny(lower, showMoreWords) {
		if slotNamed && view.Filled(slot) {
			return Decision{Action: outfit.ActionShowMore, Slot: slot}
		}
		if !slotNamed && view.LastSlot != "" && view.Filled(view.LastSlot) {
			return Decision{Action: outfit.ActionShowMore, Slot: view.LastSlot}
		}
		// Asking for more of a slot we never filled falls through to a
		// fresh build below.
	}

	if containsAny(lower, replaceWords) && view.HasOutfit() {
		if slotNamed {
			return Decision{Action: outfit.ActionReplace, Slot: slot}
		}
		// A change request that names no recognizable slot cannot be
		// planned; ask instead of guessing.
		return Decision{Action: outfit.ActionClarify}
	}

	if !slotNamed && DetectGenre(lower) == 0 && ExtractKeyword(lower) == "" && !view.HasOutfit() {
		return Decision{Action: outfit.ActionClarify}
	}

	return Decision{Action: outfit.ActionNewOutfit}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
