// The World registry: every location generated once per name and kept in
// memory for the session, so places the player has left keep receiving
// daily updates.
package world

import (
	"sort"

	"sagebrook/internal/config"
)

// World holds all live locations, keyed by name.
type World struct {
	Seed int64

	cfg       config.Config
	locations map[string]*Location
}

// NewWorld creates the registry for the given world seed. Every named
// location is generated up front: the daily sweep iterates live
// locations, so a place the player has never set foot in must already
// exist for its trees and nodes to age.
func NewWorld(seed int64, cfg config.Config) *World {
	w := &World{
		Seed:      seed,
		cfg:       cfg,
		locations: make(map[string]*Location, len(locationNames)),
	}
	for _, name := range locationNames {
		w.locations[name] = Generate(name, seed, cfg)
	}
	return w
}

// Config returns the tuning config the world was created with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Location returns the named location, generating and retaining it on
// first access.
func (w *World) Location(name string) *Location {
	if loc, ok := w.locations[name]; ok {
		return loc
	}
	loc := Generate(name, w.Seed, w.cfg)
	w.locations[name] = loc
	return loc
}

// Install replaces a location wholesale. Used by the save engine after a
// restore; gameplay code never swaps locations.
func (w *World) Install(loc *Location) {
	w.locations[loc.Name] = loc
}

// Known returns all live locations sorted by name, for deterministic
// iteration during the daily sweep and the save pass.
func (w *World) Known() []*Location {
	names := make([]string, 0, len(w.locations))
	for name := range w.locations {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Location, 0, len(names))
	for _, name := range names {
		out = append(out, w.locations[name])
	}
	return out
}
