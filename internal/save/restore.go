package save

import (
	"fmt"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/game"
	"sagebrook/internal/grid"
	"sagebrook/internal/weather"
	"sagebrook/internal/world"
)

// Restore builds a fresh session from a save document. Each recorded
// location is regenerated from its seed, the tile deltas are replayed on
// top, and the entity list is rebuilt from the flattened records. The
// document is not modified, so a failed restore leaves nothing behind.
func Restore(snap *SaveV1, cfg config.Config) (*game.Session, error) {
	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("restore: unsupported save version %d", snap.Version)
	}

	s := game.NewSession(snap.Player.Name, snap.WorldSeed, cfg)

	for _, lv := range snap.Locations {
		loc, err := restoreLocation(lv, snap.WorldSeed, cfg)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", lv.Name, err)
		}
		s.World.Install(loc)
	}

	if !knownLocation(snap.ActiveLocation) {
		return nil, fmt.Errorf("restore: unknown active location %q", snap.ActiveLocation)
	}
	s.Active = s.World.Location(snap.ActiveLocation)

	if err := restorePlayer(s.Player, snap.Player); err != nil {
		return nil, err
	}

	s.Clock.SetTime(snap.Day, snap.TimeOfDay)
	s.Weather = weather.ForDay(snap.WorldSeed, snap.Day)
	return s, nil
}

func knownLocation(name string) bool {
	switch name {
	case world.LocFarm, world.LocForest, world.LocCavern:
		return true
	}
	return false
}

func restoreLocation(lv LocationV1, worldSeed int64, cfg config.Config) (*world.Location, error) {
	if !knownLocation(lv.Name) {
		return nil, fmt.Errorf("unknown location name")
	}
	loc := world.Generate(lv.Name, worldSeed, cfg)

	for _, d := range lv.Tiles {
		if d.X < 0 || d.X >= loc.Width || d.Y < 0 || d.Y >= loc.Height {
			return nil, fmt.Errorf("tile delta out of bounds: %d,%d", d.X, d.Y)
		}
		if d.ID < 0 || d.ID > int(grid.TileFloor) {
			return nil, fmt.Errorf("tile delta bad id %d at %d,%d", d.ID, d.X, d.Y)
		}
		loc.SetTile(d.X, d.Y, grid.TileID(d.ID))
	}

	// Entity identifiers are not reproducible across runs, so the saved
	// list replaces the generated one wholesale.
	loc.Entities = nil
	for _, ev := range lv.Entities {
		e, err := decodeEntity(ev, cfg)
		if err != nil {
			return nil, err
		}
		loc.AddEntity(e)
	}
	return loc, nil
}

func restorePlayer(p *game.Player, pv PlayerV1) error {
	p.X = pv.X
	p.Y = pv.Y
	p.Gold = pv.Gold
	p.Stamina = pv.Stamina
	p.MaxStamina = pv.MaxStamina
	p.Mana = pv.Mana

	for i := range p.Inventory.Slots {
		p.Inventory.Slots[i] = nil
	}
	for _, sv := range pv.Items {
		if sv.Index < 0 || sv.Index >= len(p.Inventory.Slots) {
			return fmt.Errorf("restore player: slot %d out of range", sv.Index)
		}
		it, err := decodeItem(sv.Item)
		if err != nil {
			return fmt.Errorf("restore player slot %d: %w", sv.Index, err)
		}
		p.Inventory.Slots[sv.Index] = it
	}
	p.Inventory.Select(pv.SelectedSlot)
	return nil
}

// decodeEntity rebuilds one entity through its constructor so unexported
// tuning fields come from the current config, then replays the saved
// dynamic state on top.
func decodeEntity(ev EntityV1, cfg config.Config) (*entity.Entity, error) {
	switch ev.Type {
	case typeObstacle:
		w, h := ev.Width, ev.Height
		if w <= 0 {
			w = entity.TileSize
		}
		if h <= 0 {
			h = entity.TileSize
		}
		return entity.NewObstacle(ev.X, ev.Y, w, h), nil

	case typeCrop:
		def, ok := cfg.Crops[ev.Species]
		if !ok {
			return nil, fmt.Errorf("decode crop: unknown species %q", ev.Species)
		}
		if ev.Stage < int(entity.StageSeed) || ev.Stage > int(entity.StageDead) {
			return nil, fmt.Errorf("decode crop: bad stage %d", ev.Stage)
		}
		e := entity.NewCrop(ev.Species, def, ev.X, ev.Y)
		e.Crop.Stage = entity.CropStage(ev.Stage)
		e.Crop.DaysAtStage = ev.DaysAtStage
		e.Crop.DaysWithoutWater = ev.DaysWithoutWater
		e.Crop.WateredToday = ev.WateredToday
		return e, nil

	case typeTree:
		if ev.Stage < int(entity.TreeSapling) || ev.Stage > int(entity.TreeStump) {
			return nil, fmt.Errorf("decode tree: bad stage %d", ev.Stage)
		}
		e := entity.NewTree(entity.TreeStage(ev.Stage), cfg.Trees, ev.X, ev.Y)
		e.Tree.DaysAtStage = ev.DaysAtStage
		return e, nil

	case typeManaNode:
		e := entity.NewManaNode(cfg.Mana, ev.X, ev.Y)
		e.Mana.Charge = ev.Charge
		return e, nil

	case typeShippingBin:
		e := entity.NewShippingBin(ev.X, ev.Y)
		if ev.Buffer != nil {
			it, err := decodeItem(*ev.Buffer)
			if err != nil {
				return nil, fmt.Errorf("decode bin buffer: %w", err)
			}
			e.Bin.Buffer = it
		}
		for _, iv := range ev.Manifest {
			it, err := decodeItem(iv)
			if err != nil {
				return nil, fmt.Errorf("decode bin manifest: %w", err)
			}
			e.Bin.Manifest = append(e.Bin.Manifest, it)
		}
		return e, nil

	case typeBed:
		return entity.NewBed(ev.X, ev.Y), nil

	case typeSign:
		return entity.NewSign(ev.X, ev.Y, ev.Text), nil
	}
	return nil, fmt.Errorf("decode entity: unknown type %q", ev.Type)
}
