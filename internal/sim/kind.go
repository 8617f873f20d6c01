package sim

// Kind identifies the concrete variant of an actor. It doubles as the visual
// tag handed to the presentation layer.
type Kind int

const (
	KindPlayer Kind = iota
	KindCitizen
	KindDumbZombie
	KindSmartZombie
	KindVaccineGoodie
	KindGasCanGoodie
	KindLandmineGoodie
	KindFlame
	KindVomit
	KindLandmine
	KindPit
	KindExit
	KindWall
	kindCount
)

var kindNames = [kindCount]string{
	KindPlayer:         "player",
	KindCitizen:        "citizen",
	KindDumbZombie:     "dumb_zombie",
	KindSmartZombie:    "smart_zombie",
	KindVaccineGoodie:  "vaccine_goodie",
	KindGasCanGoodie:   "gas_can_goodie",
	KindLandmineGoodie: "landmine_goodie",
	KindFlame:          "flame",
	KindVomit:          "vomit",
	KindLandmine:       "landmine",
	KindPit:            "pit",
	KindExit:           "exit",
	KindWall:           "wall",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsZombie reports whether k is either zombie variant.
func (k Kind) IsZombie() bool {
	return k == KindDumbZombie || k == KindSmartZombie
}

// IsGoodie reports whether k is a collectible.
func (k Kind) IsGoodie() bool {
	return k == KindVaccineGoodie || k == KindGasCanGoodie || k == KindLandmineGoodie
}

// Caps is the set of fixed capability flags an actor advertises to spatial queries.
type Caps uint8

const (
	CapBlocksMovement Caps = 1 << iota
	CapBlocksFlame
	CapTriggersActiveLandmines
	CapTriggersVomit
	CapThreatensCitizens
	CapTriggersCitizens
)

// Has reports whether every flag in f is set.
func (c Caps) Has(f Caps) bool {
	return c&f == f
}

// kindCaps is resolved once per actor at construction. Kinds not listed
// advertise nothing.
var kindCaps = [kindCount]Caps{
	KindPlayer:      CapBlocksMovement | CapTriggersActiveLandmines | CapTriggersVomit | CapTriggersCitizens,
	KindCitizen:     CapBlocksMovement | CapTriggersActiveLandmines | CapTriggersVomit,
	KindDumbZombie:  CapBlocksMovement | CapTriggersActiveLandmines | CapThreatensCitizens | CapTriggersCitizens,
	KindSmartZombie: CapBlocksMovement | CapTriggersActiveLandmines | CapThreatensCitizens | CapTriggersCitizens,
	KindExit:        CapBlocksFlame,
	KindWall:        CapBlocksMovement | CapBlocksFlame,
}

// kindDepth orders drawing: lower depths are drawn on top.
var kindDepth = [kindCount]int{
	KindVaccineGoodie:  1,
	KindGasCanGoodie:   1,
	KindLandmineGoodie: 1,
	KindLandmine:       1,
	KindExit:           1,
}

// CapsOf returns the capability set of a kind.
func CapsOf(k Kind) Caps {
	if k < 0 || k >= kindCount {
		return 0
	}
	return kindCaps[k]
}
