// Package request derives structured search parameters and user intent
// from free-text outfit prompts using deterministic rules.
package request

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

// Resolved carries everything the planner needs from a prompt.
type Resolved struct {
	Keyword  string
	Genre    int
	MinPrice *int
	MaxPrice *int
	Slots    []outfit.Slot
}

// Resolve extracts price bounds, genre, keyword and the requested slot
// set from a prompt. It is pure and never fails; unparsed fragments
// simply contribute nothing.
func Resolve(text string) Resolved {
	min, max := ParsePrice(text)
	res := Resolved{
		Keyword:  ExtractKeyword(text),
		Genre:    DetectGenre(text),
		MinPrice: min,
		MaxPrice: max,
	}

	if slot, ok := DetectSlot(text); ok {
		res.Slots = []outfit.Slot{slot}
	} else {
		res.Slots = CanonicalSlots(text)
	}
	return res
}

var (
	underPattern = regexp.MustCompile(`(?:under|below|less than)\s*(\d+)`)
	overPattern  = regexp.MustCompile(`(?:over|above|more than)\s*(\d+)`)
	rangePattern = regexp.MustCompile(`(\d+)\s*(?:-|to|–)\s*(\d+)`)
)

// ParsePrice recognizes "under N", "over N" and "N-M" phrasings and
// converts them to Robux bounds. Text without a price phrase yields
// nil bounds, not an error.
func ParsePrice(text string) (min, max *int) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if m := underPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			max = &v
		}
	}
	if m := overPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			min = &v
		}
	}
	if m := rangePattern.FindStringSubmatch(lower); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil {
			min, max = &lo, &hi
		}
	}
	return min, max
}

var genreBuckets = []struct {
	genre int
	words []string
}{
	{outfit.GenreMedieval, []string{"medieval", "knight", "castle", "armor"}},
	{outfit.GenreSciFi, []string{"sci-fi", "scifi", "futuristic", "space", "robot"}},
	{outfit.GenreFighting, []string{"fighting", "combat", "warrior"}},
	{outfit.GenreHorror, []string{"horror", "scary", "spooky", "zombie"}},
	{outfit.GenreWestern, []string{"western", "cowboy", "sheriff"}},
	{outfit.GenreMilitary, []string{"military", "soldier", "army"}},
	{outfit.GenreRPG, []string{"rpg", "fantasy", "magic"}},
}

// DetectGenre maps style words to a catalog genre ID, 0 when none match.
func DetectGenre(text string) int {
	lower := strings.ToLower(text)
	for _, bucket := range genreBuckets {
		for _, word := range bucket.words {
			if strings.Contains(lower, word) {
				return bucket.genre
			}
		}
	}
	return 0
}

// slotKeywords maps item words to slots. Ordered so the more specific
// entries ("t-shirt") win over their substrings ("shirt").
var slotKeywords = []struct {
	word string
	slot outfit.Slot
}{
	{"headgear", outfit.SlotHead},
	{"helmet", outfit.SlotHead},
	{"beanie", outfit.SlotHead},
	{"hat", outfit.SlotHead},
	{"hairstyle", outfit.SlotHair},
	{"hair", outfit.SlotHair},
	{"eyepatch", outfit.SlotFace},
	{"mask", outfit.SlotFace},
	{"face", outfit.SlotFace},
	{"t-shirt", outfit.SlotTShirt},
	{"tshirt", outfit.SlotTShirt},
	{"tee", outfit.SlotTShirt},
	{"shirt", outfit.SlotShirt},
	{"top", outfit.SlotShirt},
	{"trousers", outfit.SlotPants},
	{"jeans", outfit.SlotPants},
	{"pants", outfit.SlotPants},
	{"jetpack", outfit.SlotBackAccessory},
	{"wings", outfit.SlotBackAccessory},
	{"cape", outfit.SlotBackAccessory},
	{"back", outfit.SlotBackAccessory},
	{"necklace", outfit.SlotNeckAccessory},
	{"scarf", outfit.SlotNeckAccessory},
	{"neck", outfit.SlotNeckAccessory},
	{"pauldron", outfit.SlotShoulderAccessory},
	{"shoulder", outfit.SlotShoulderAccessory},
	{"chest", outfit.SlotFrontAccessory},
	{"front", outfit.SlotFrontAccessory},
	{"belt", outfit.SlotWaistAccessory},
	{"waist", outfit.SlotWaistAccessory},
	{"bundle", outfit.SlotBundle},
	{"emote", outfit.SlotEmote},
}

var slotPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(slotKeywords))
	for i, entry := range slotKeywords {
		// Whole-word match so "hat" does not fire inside "what".
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.word) + `s?\b`)
	}
	return patterns
}()

// DetectSlot finds the first slot named in the text, if any.
func DetectSlot(text string) (outfit.Slot, bool) {
	lower := strings.ToLower(text)
	for i, entry := range slotKeywords {
		if slotPatterns[i].MatchString(lower) {
			return entry.slot, true
		}
	}
	return "", false
}

var fillerWords = map[string]struct{}{
	"want": {}, "need": {}, "looking": {}, "find": {}, "show": {},
	"outfit": {}, "clothes": {}, "items": {}, "gear": {}, "options": {},
	"more": {}, "another": {}, "some": {}, "something": {}, "please": {},
	"change": {}, "replace": {}, "swap": {}, "different": {}, "next": {},
}

// ExtractKeyword keeps the first few meaningful words of the prompt as
// a free-text catalog keyword. Unknown style terms pass through
// unchanged.
func ExtractKeyword(text string) string {
	var meaningful []string
	for _, word := range strings.Fields(text) {
		trimmed := strings.Trim(strings.ToLower(word), ".,!?'\"")
		if len(trimmed) <= 3 {
			continue
		}
		if _, filler := fillerWords[trimmed]; filler {
			continue
		}
		meaningful = append(meaningful, trimmed)
		if len(meaningful) == 3 {
			break
		}
	}
	return strings.Join(meaningful, " ")
}

var accessoryBuckets = []struct {
	words []string
	extra []outfit.Slot
}{
	{[]string{"knight", "medieval", "armor", "warrior"}, []outfit.Slot{outfit.SlotBackAccessory, outfit.SlotFrontAccessory}},
	{[]string{"ninja", "stealth", "dark"}, []outfit.Slot{outfit.SlotFace, outfit.SlotBackAccessory}},
	{[]string{"casual", "everyday", "simple"}, nil},
	{[]string{"fancy", "formal", "elegant"}, []outfit.Slot{outfit.SlotNeckAccessory}},
}

// CanonicalSlots builds the slot set for a generic outfit request:
// the Head/Shirt/Pants core plus style-dependent accessories, capped
// at MaxPlanSlots.
func CanonicalSlots(text string) []outfit.Slot {
	lower := strings.ToLower(text)
	slots := []outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants}

	matched := false
	for _, bucket := range accessoryBuckets {
		for _, word := range bucket.words {
			if strings.Contains(lower, word) {
				slots = append(slots, bucket.extra...)
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if !matched {
		slots = append(slots, outfit.SlotBackAccessory)
	}

	if len(slots) > outfit.MaxPlanSlots {
		slots = slots[:outfit.MaxPlanSlots]
	}
	return slots
}
