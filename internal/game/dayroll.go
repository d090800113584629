// Day-rollover dispatch. The sweep covers every known location, not just
// the active one: offscreen fields keep growing and offscreen nodes keep
// recharging. Ordering within each location is load-bearing — entities
// advance while yesterday's watered tiles are still wet, evaporation dries
// the soil only afterwards, and the new day's rain lands last.
package game

import (
	"log/slog"

	"sagebrook/internal/grid"
	"sagebrook/internal/weather"
	"sagebrook/internal/world"
)

// advanceDayAllLocations is subscribed to the clock's day rollover. It
// runs synchronously within the frame that crossed the boundary; a day
// change is rare enough that the O(total entities) stall is acceptable.
func (s *Session) advanceDayAllLocations(day int) {
	locations := s.World.Known()

	total := 0
	removed := 0
	for _, loc := range locations {
		r := advanceEntities(loc)
		total += len(loc.Entities) + r
		removed += r
	}

	// Evaporation: only after every entity has seen the wet tiles.
	for _, loc := range locations {
		dryTiles(loc)
	}

	// New day's weather; rain re-wets tilled soil across the world.
	s.Weather = weather.ForDay(s.World.Seed, day)
	if weather.IsWet(s.Weather) {
		for _, loc := range locations {
			rainOn(loc)
		}
	}

	slog.Info("day advanced",
		"day", day,
		"weather", weather.Name(s.Weather),
		"locations", len(locations),
		"entities", total,
		"removed", removed,
	)
}

// advanceEntities runs the daily hook on every entity in a location,
// removing those that report completion. Returns the removal count.
func advanceEntities(loc *world.Location) int {
	kept := loc.Entities[:0]
	removed := 0
	for _, e := range loc.Entities {
		if e.AdvanceDay(loc) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	loc.Entities = kept
	return removed
}

// dryTiles reverts all wet soil to tilled for the new day.
func dryTiles(loc *world.Location) {
	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			if loc.Tile(x, y).ID == grid.TileWet {
				loc.SetTile(x, y, grid.TileTilled)
			}
		}
	}
}

// rainOn wets every tilled tile in a location.
func rainOn(loc *world.Location) {
	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			if loc.Tile(x, y).ID == grid.TileTilled {
				loc.SetTile(x, y, grid.TileWet)
			}
		}
	}
}
