package findluigi

import (
	"fmt"

	"github.com/vovakirdan/find-luigi/internal/core"
)

// Spawn grid and reserved HUD zone, in arena pixels.
const (
	gridStep      = 20  // Spawn positions are multiples of this
	gridCells     = 45  // Highest grid index (inclusive)
	reservedZone  = 150 // Top-left square kept clear for the HUD
	reservedShift = 90  // Offset applied to spawns that land in the zone
)

// RoundParams are the random ranges used to populate a round.
type RoundParams struct {
	MinDecoys int
	MaxDecoys int
	Speeds    SpeedRange
}

// DefaultRoundParams returns 75..99 decoys with base speeds 1..2.
func DefaultRoundParams() RoundParams {
	return RoundParams{MinDecoys: 75, MaxDecoys: 99, Speeds: SpeedRange{Min: 1, Max: 2}}
}

// RoundGenerator builds the sprite set for a round.
type RoundGenerator struct {
	rng    *Random
	params RoundParams
	nextID int
}

// NewRoundGenerator creates a generator drawing from rng.
func NewRoundGenerator(rng *Random, p RoundParams) *RoundGenerator {
	return &RoundGenerator{rng: rng, params: p}
}

// Generate returns a fresh round in draw order: the decoys and one target,
// shuffled together. Sprites may overlap; click resolution sorts that out.
func (g *RoundGenerator) Generate(m Multipliers) []*Sprite {
	decoys := g.rng.Between(g.params.MinDecoys, g.params.MaxDecoys) * m.Population

	sprites := make([]*Sprite, 0, decoys+1)
	for i := 0; i < decoys; i++ {
		sprites = append(sprites, g.spawn(m, false))
	}
	sprites = append(sprites, g.spawn(m, true))

	Shuffle(g.rng, sprites)
	return sprites
}

// spawn draws one sprite. The draw order (x, y, kind, directions, speeds) is
// part of the seeded contract and must not change.
func (g *RoundGenerator) spawn(m Multipliers, target bool) *Sprite {
	x := g.rng.Between(1, gridCells) * gridStep
	y := g.rng.Between(1, gridCells) * gridStep

	kind := core.KindTarget
	if !target {
		kind = core.DecoyKinds[g.rng.Intn(len(core.DecoyKinds))]
	}

	if x < reservedZone && y < reservedZone {
		x += reservedShift
		y += reservedShift
	}

	g.nextID++
	s := newSprite(g.nextID, kind, x, y)
	s.DirX = g.rng.Between(-1, 1) * m.Direction
	s.DirY = g.rng.Between(-1, 1) * m.Direction
	s.SpeedX = g.rng.Between(g.params.Speeds.Min, g.params.Speeds.Max) * (1 + m.Speed)
	s.SpeedY = g.rng.Between(g.params.Speeds.Min, g.params.Speeds.Max) * (1 + m.Speed)
	return s
}

// countTargets returns how many sprites in the set are the target.
func countTargets(sprites []*Sprite) int {
	n := 0
	for _, s := range sprites {
		if s.Kind.IsTarget() {
			n++
		}
	}
	return n
}

// mustHaveOneTarget panics unless the round has exactly one target. Anything
// else is a generator bug, not a game state.
func mustHaveOneTarget(sprites []*Sprite) {
	if n := countTargets(sprites); n != 1 {
		panic(fmt.Sprintf("findluigi: round has %d targets, want 1", n))
	}
}
