// Session wiring: one Session owns the clock, the world registry, the
// player, and the transition machine for a whole play session. Created at
// session start, reset by starting a new game, discarded at session end —
// nothing here is ambient global state.
package game

import (
	"log/slog"

	"sagebrook/internal/clock"
	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/item"
	"sagebrook/internal/transition"
	"sagebrook/internal/weather"
	"sagebrook/internal/world"
)

// Session is the world orchestrator.
type Session struct {
	World      *world.World
	Clock      *clock.Clock
	Player     *Player
	Registry   *item.Registry
	Transition *transition.Machine

	Active  *world.Location
	Weather weather.Kind

	cfg        config.Config
	commands   []Command
	lastResult Result
}

// NewSession builds a fresh session: registry, world, clock, player on
// the farm, transition machine, and the day-rollover subscription.
func NewSession(playerName string, seed int64, cfg config.Config) *Session {
	registry := item.NewRegistry()
	// Crop sell prices come from the tuning tables.
	for name, def := range cfg.Crops {
		if existing, ok := registry.Material(def.YieldItem); ok {
			existing.SellPrice = def.SellPrice
			registry.Define(existing)
		} else {
			registry.Define(item.MaterialDef{
				Key: def.YieldItem, Name: name, SellPrice: def.SellPrice, MaxStack: 99,
			})
		}
	}

	w := world.NewWorld(seed, cfg)
	farm := w.Location(world.LocFarm)

	s := &Session{
		World:      w,
		Clock:      clock.New(cfg.Clock.SecondsPerTenMinutes),
		Registry:   registry,
		Transition: transition.NewMachine(cfg.Fade.Seconds),
		Active:     farm,
		Weather:    weather.ForDay(seed, 1),
		cfg:        cfg,
	}
	s.Player = NewPlayer(playerName, playerSpawnX, playerSpawnY, cfg, registry)

	s.Clock.SubscribeDay(s.advanceDayAllLocations)

	s.Transition.OnSwap = func(target string, x, y float64) {
		s.Active = s.World.Location(target)
		s.Player.X = x
		s.Player.Y = y
		slog.Info("location swapped", "location", target)
	}
	s.Transition.OnSleep = s.sleepNow

	return s
}

// Player spawn on the farm, just outside the farmhouse.
const (
	playerSpawnX = 4.5 * entity.TileSize
	playerSpawnY = 6 * entity.TileSize
)

// Config returns the session tuning config.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Update runs one frame: while a transition is in flight only the fade
// advances (the world must not be observed mid-swap); otherwise the
// clock accumulates real time and at most one queued player interaction
// is resolved.
func (s *Session) Update(dt float64) {
	if s.Transition.Busy() {
		s.Transition.Update(dt)
		return
	}

	s.Clock.Advance(dt)
	s.drainOne()
	s.checkWarp()
}

// checkWarp starts a location transition when the player stands on a
// warp tile.
func (s *Session) checkWarp() {
	if s.Transition.Busy() {
		return
	}
	tx, ty := s.Player.TileCoords()
	warp := s.Active.WarpAt(tx, ty)
	if warp == nil {
		return
	}
	s.Transition.StartLocationTransition(
		warp.Target,
		float64(warp.TargetX*entity.TileSize)+entity.TileSize/2,
		float64((warp.TargetY+1)*entity.TileSize),
	)
}

// CanOccupy reports whether an AABB may be occupied: the tiles under all
// four corners are walkable and no collidable entity box intersects it.
func (s *Session) CanOccupy(x0, y0, x1, y1 float64) bool {
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}
	for _, c := range corners {
		tx := int(c[0]) / entity.TileSize
		ty := int(c[1]) / entity.TileSize
		if c[0] < 0 || c[1] < 0 || !s.Active.Tile(tx, ty).Walkable {
			return false
		}
	}
	for _, e := range s.Active.Entities {
		if !e.Collidable {
			continue
		}
		ex0, ey0, ex1, ey1 := e.Bounds()
		if x0 < ex1 && x1 > ex0 && y0 < ey1 && y1 > ey0 {
			return false
		}
	}
	return true
}

// MovePlayer slides the player by (dx, dy), resolving each axis
// independently so a blocked diagonal still slides along the free axis.
func (s *Session) MovePlayer(dx, dy float64) {
	if s.Transition.Busy() {
		return
	}
	p := s.Player

	if dx != 0 {
		x0, y0, x1, y1 := p.Bounds()
		if s.CanOccupy(x0+dx, y0, x1+dx, y1) {
			p.X += dx
		}
	}
	if dy != 0 {
		x0, y0, x1, y1 := p.Bounds()
		if s.CanOccupy(x0, y0+dy, x1, y1+dy) {
			p.Y += dy
		}
	}
}

// RequestSleep starts the sleep transition if a bed is within reach.
func (s *Session) RequestSleep() bool {
	if s.Transition.Busy() {
		return false
	}
	tx, ty := s.Player.TileCoords()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			e := s.Active.EntityAt(tx+dx, ty+dy)
			if e != nil && e.TrySleep() {
				return s.Transition.StartSleepTransition()
			}
		}
	}
	return false
}

// sleepNow runs behind the opaque sleep fade: shipping bins across all
// locations are processed into gold, the day is forced over (which runs
// the full entity sweep), and stamina is restored.
func (s *Session) sleepNow() {
	gold := 0
	for _, loc := range s.World.Known() {
		for _, e := range loc.Entities {
			if e.Kind == entity.KindShippingBin {
				gold += e.ProcessNightly(s.Registry)
			}
		}
	}
	if gold > 0 {
		slog.Info("shipment processed", "gold", gold)
	}
	s.Player.Gold += gold

	s.Clock.ForceNewDay()
	s.Player.Stamina = s.Player.MaxStamina
}
