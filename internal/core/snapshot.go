package core

// Kind identifies what a sprite is. Drivers own the mapping from kind to
// glyph, colour or texture.
type Kind int

const (
	KindTarget Kind = iota // Luigi
	KindDecoyA             // Mario
	KindDecoyB             // Wario
	KindDecoyC             // Yoshi
)

// DecoyKinds lists the non-target kinds in selection order.
var DecoyKinds = [...]Kind{KindDecoyA, KindDecoyB, KindDecoyC}

// String returns the character name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTarget:
		return "Luigi"
	case KindDecoyA:
		return "Mario"
	case KindDecoyB:
		return "Wario"
	case KindDecoyC:
		return "Yoshi"
	default:
		return "Unknown"
	}
}

// IsTarget reports whether the kind is the one the player must find.
func (k Kind) IsTarget() bool {
	return k == KindTarget
}

// SpriteView is the read-only view of a sprite handed to renderers.
type SpriteView struct {
	ID   int
	Kind Kind
	X, Y int
}

// Snapshot is everything a driver needs to draw one frame.
// Sprites are in draw order: later entries are on top.
type Snapshot struct {
	Sprites       []SpriteView
	Score         int
	Lives         int
	TimeRemaining int
	GameOver      bool
	HighScore     int
	Level         string
	Round         int
	Debounced     bool
}

// Target returns the target sprite, if the snapshot has one.
func (s Snapshot) Target() (SpriteView, bool) {
	for _, sp := range s.Sprites {
		if sp.Kind.IsTarget() {
			return sp, true
		}
	}
	return SpriteView{}, false
}
