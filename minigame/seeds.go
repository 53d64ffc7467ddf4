package minigame

import (
	"math"
	"math/rand/v2"

	"github.com/phanxgames/ph"
)

// maxPlacementAttempts bounds the rejection sampling for one seed before the
// spacing is relaxed.
const maxPlacementAttempts = 200

// placeSeeds scatters cfg.NumSeeds seeds between the margins, each at least
// the current spacing away horizontally from every earlier seed. When a seed
// cannot be placed within maxPlacementAttempts draws the spacing halves, so
// placement always terminates.
func placeSeeds(cfg Config, rng *rand.Rand) []ph.Vec2 {
	seeds := make([]ph.Vec2, 0, cfg.NumSeeds)
	spacing := cfg.SeedSpace
	lo := cfg.BallMargin
	span := cfg.Width - 2*cfg.BallMargin
	for len(seeds) < cfg.NumSeeds {
		placed := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			x := lo + rng.Float64()*span
			if !spacedFrom(seeds, x, spacing) {
				continue
			}
			y := cfg.Height * (cfg.SeedMinY + rng.Float64()*(cfg.SeedMaxY-cfg.SeedMinY))
			seeds = append(seeds, ph.Vec2{X: x, Y: y})
			placed = true
			break
		}
		if !placed {
			spacing /= 2
		}
	}
	return seeds
}

func spacedFrom(seeds []ph.Vec2, x, spacing float64) bool {
	for _, s := range seeds {
		if math.Abs(s.X-x) < spacing {
			return false
		}
	}
	return true
}
