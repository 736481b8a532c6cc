package request

import (
	"testing"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		text string
		min  int
		max  int
	}{
		{"under", "something under 100 robux", 0, 100},
		{"below", "below 50", 0, 50},
		{"less than", "less than 250", 0, 250},
		{"over", "over 50 please", 50, 0},
		{"more than", "more than 300", 300, 0},
		{"range dash", "50-200 robux", 50, 200},
		{"range to", "from 50 to 200", 50, 200},
		{"no price", "a knight outfit", 0, 0},
		{"unparseable", "around cheap-ish", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max := ParsePrice(tc.text)
			if got := deref(min); got != tc.min {
				t.Fatalf("min: got %d want %d", got, tc.min)
			}
			if got := deref(max); got != tc.max {
				t.Fatalf("max: got %d want %d", got, tc.max)
			}
		})
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func TestDetectGenre(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"a knight outfit", outfit.GenreMedieval},
		{"futuristic space gear", outfit.GenreSciFi},
		{"spooky zombie look", outfit.GenreHorror},
		{"cowboy hat", outfit.GenreWestern},
		{"a soldier uniform", outfit.GenreMilitary},
		{"fantasy wizard robes", outfit.GenreRPG},
		{"plain blue shirt", 0},
	}

	for _, tc := range cases {
		if got := DetectGenre(tc.text); got != tc.want {
			t.Errorf("DetectGenre(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestDetectSlot(t *testing.T) {
	cases := []struct {
		text  string
		want  outfit.Slot
		found bool
	}{
		{"show me futuristic helmets", outfit.SlotHead, true},
		{"change the headgear", outfit.SlotHead, true},
		{"a red cape", outfit.SlotBackAccessory, true},
		{"cool t-shirt", outfit.SlotTShirt, true},
		{"a plain shirt", outfit.SlotShirt, true},
		{"black trousers", outfit.SlotPants, true},
		{"what about this", "", false},
		{"something medieval", "", false},
	}

	for _, tc := range cases {
		slot, ok := DetectSlot(tc.text)
		if ok != tc.found || slot != tc.want {
			t.Errorf("DetectSlot(%q) = (%q, %v), want (%q, %v)", tc.text, slot, ok, tc.want, tc.found)
		}
	}
}

func TestDetectSlotIgnoresSubstrings(t *testing.T) {
	// "hat" must not fire inside "what" or "that".
	if slot, ok := DetectSlot("what do you think of that"); ok {
		t.Fatalf("unexpected slot %q", slot)
	}
}

func TestExtractKeyword(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"I want a knight outfit", "knight"},
		{"show me more helmet options", "helmet"},
		{"change the headgear", "headgear"},
		{"hi", ""},
		{"find me something", ""},
		{"sparkly unicorn wings under 100", "sparkly unicorn wings"},
	}

	for _, tc := range cases {
		if got := ExtractKeyword(tc.text); got != tc.want {
			t.Errorf("ExtractKeyword(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestCanonicalSlots(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []outfit.Slot
	}{
		{
			"knight adds back and front",
			"a knight outfit",
			[]outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants, outfit.SlotBackAccessory, outfit.SlotFrontAccessory},
		},
		{
			"ninja adds face and back",
			"ninja style",
			[]outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants, outfit.SlotFace, outfit.SlotBackAccessory},
		},
		{
			"casual stays core",
			"casual everyday look",
			[]outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants},
		},
		{
			"fancy adds neck",
			"something elegant",
			[]outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants, outfit.SlotNeckAccessory},
		},
		{
			"default adds one accessory",
			"a pirate look",
			[]outfit.Slot{outfit.SlotHead, outfit.SlotShirt, outfit.SlotPants, outfit.SlotBackAccessory},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanonicalSlots(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("slot %d: got %q want %q", i, got[i], tc.want[i])
				}
			}
			if len(got) > outfit.MaxPlanSlots {
				t.Fatalf("slot set exceeds cap: %d", len(got))
			}
		})
	}
}

func TestResolveNamedSlotNarrows(t *testing.T) {
	res := Resolve("show me futuristic helmets under 100")

	if len(res.Slots) != 1 || res.Slots[0] != outfit.SlotHead {
		t.Fatalf("expected single Head slot, got %v", res.Slots)
	}
	if res.Genre != outfit.GenreSciFi {
		t.Fatalf("expected sci-fi genre, got %d", res.Genre)
	}
	if res.MaxPrice == nil || *res.MaxPrice != 100 {
		t.Fatalf("expected max price 100, got %v", res.MaxPrice)
	}
	if res.MinPrice != nil {
		t.Fatalf("expected no min price, got %v", *res.MinPrice)
	}
}
