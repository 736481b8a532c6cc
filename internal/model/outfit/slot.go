package outfit

// Slot is a named outfit position. An outfit holds at most one current
// item per slot.
type Slot string

const (
	SlotHead              Slot = "Head"
	SlotHair              Slot = "Hair"
	SlotFace              Slot = "Face"
	SlotShirt             Slot = "Shirt"
	SlotTShirt            Slot = "T-Shirt"
	SlotPants             Slot = "Pants"
	SlotBackAccessory     Slot = "Back Accessory"
	SlotNeckAccessory     Slot = "Neck Accessory"
	SlotShoulderAccessory Slot = "Shoulder Accessory"
	SlotFrontAccessory    Slot = "Front Accessory"
	SlotWaistAccessory    Slot = "Waist Accessory"
	SlotHeadBodypart      Slot = "Head Bodypart"
	SlotBundle            Slot = "Bundle"
	SlotEmote             Slot = "Emote"
)

// AllSlots lists every slot in canonical presentation order. Outfit
// snapshots iterate this list so responses stay deterministic.
var AllSlots = []Slot{
	SlotHead,
	SlotHair,
	SlotFace,
	SlotShirt,
	SlotTShirt,
	SlotPants,
	SlotBackAccessory,
	SlotNeckAccessory,
	SlotShoulderAccessory,
	SlotFrontAccessory,
	SlotWaistAccessory,
	SlotHeadBodypart,
	SlotBundle,
	SlotEmote,
}

// Catalog subcategory identifiers, as defined by the Roblox catalog
// search API.
const (
	SubcategoryHats                = 9
	SubcategoryFaces               = 10
	SubcategoryShirts              = 12
	SubcategoryTShirts             = 13
	SubcategoryPants               = 14
	SubcategoryHeads               = 15
	SubcategoryHairAccessories     = 20
	SubcategoryFaceAccessories     = 21
	SubcategoryNeckAccessories     = 22
	SubcategoryShoulderAccessories = 23
	SubcategoryFrontAccessories    = 24
	SubcategoryBackAccessories     = 25
	SubcategoryWaistAccessories    = 26
	SubcategoryBundles             = 37
	SubcategoryEmoteAnimations     = 39
)

// Catalog genre identifiers.
const (
	GenreTownAndCity = 1
	GenreMedieval    = 2
	GenreSciFi       = 3
	GenreFighting    = 4
	GenreHorror      = 5
	GenreWestern     = 10
	GenreMilitary    = 11
	GenreRPG         = 15
)

var slotSubcategories = map[Slot]int{
	SlotHead:              SubcategoryHats,
	SlotHair:              SubcategoryHairAccessories,
	SlotFace:              SubcategoryFaces,
	SlotShirt:             SubcategoryShirts,
	SlotTShirt:            SubcategoryTShirts,
	SlotPants:             SubcategoryPants,
	SlotBackAccessory:     SubcategoryBackAccessories,
	SlotNeckAccessory:     SubcategoryNeckAccessories,
	SlotShoulderAccessory: SubcategoryShoulderAccessories,
	SlotFrontAccessory:    SubcategoryFrontAccessories,
	SlotWaistAccessory:    SubcategoryWaistAccessories,
	SlotHeadBodypart:      SubcategoryHeads,
	SlotBundle:            SubcategoryBundles,
	SlotEmote:             SubcategoryEmoteAnimations,
}

// Subcategory returns the catalog subcategory searched for this slot.
func (s Slot) Subcategory() int {
	return slotSubcategories[s]
}

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	_, ok := slotSubcategories[s]
	return ok
}

// ParseSlot matches a raw string against the slot enumeration,
// accepting the canonical names produced by the classifier backend.
func ParseSlot(raw string) (Slot, bool) {
	s := Slot(raw)
	if s.Valid() {
		return s, true
	}
	return "", false
}

// SlotForSubcategory reverses the slot to subcategory mapping. Used by
// the mock catalog to label generated items.
func SlotForSubcategory(subcategory int) (Slot, bool) {
	for slot, sub := range slotSubcategories {
		if sub == subcategory {
			return slot, true
		}
	}
	return "", false
}
