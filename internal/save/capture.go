package save

import (
	"fmt"
	"time"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/game"
	"sagebrook/internal/world"
)

// Capture flattens a running session into a save document. The session
// is not modified. Tile deltas are computed against a fresh regeneration
// of each location, so pristine locations cost almost nothing on disk.
func Capture(s *game.Session) (*SaveV1, error) {
	snap := &SaveV1{
		Version:        FormatVersion,
		SavedAt:        time.Now().UTC().Format(time.RFC3339),
		WorldSeed:      s.World.Seed,
		Day:            s.Clock.Day,
		TimeOfDay:      s.Clock.TimeOfDay,
		ActiveLocation: s.Active.Name,
	}

	player, err := capturePlayer(s.Player)
	if err != nil {
		return nil, err
	}
	snap.Player = player

	for _, loc := range s.World.Known() {
		lv, err := captureLocation(loc, s.Config())
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", loc.Name, err)
		}
		snap.Locations = append(snap.Locations, lv)
	}
	return snap, nil
}

func capturePlayer(p *game.Player) (PlayerV1, error) {
	pv := PlayerV1{
		Name:         p.Name,
		X:            p.X,
		Y:            p.Y,
		Gold:         p.Gold,
		Stamina:      p.Stamina,
		MaxStamina:   p.MaxStamina,
		Mana:         p.Mana,
		SelectedSlot: p.Inventory.Selected,
	}
	for i, it := range p.Inventory.Slots {
		if it == nil {
			continue
		}
		iv, err := encodeItem(it)
		if err != nil {
			return PlayerV1{}, fmt.Errorf("slot %d: %w", i, err)
		}
		pv.Items = append(pv.Items, SlotV1{Index: i, Item: iv})
	}
	return pv, nil
}

// captureLocation diffs a live location against a fresh regeneration
// from the seed the location itself carries.
func captureLocation(loc *world.Location, cfg config.Config) (LocationV1, error) {
	lv := LocationV1{Name: loc.Name}

	baseline := world.Generate(loc.Name, loc.Seed, cfg)
	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			cur := loc.Tile(x, y).ID
			if cur != baseline.Tile(x, y).ID {
				lv.Tiles = append(lv.Tiles, TileDeltaV1{X: x, Y: y, ID: int(cur)})
			}
		}
	}

	for _, e := range loc.Entities {
		ev, err := encodeEntity(e)
		if err != nil {
			return LocationV1{}, err
		}
		lv.Entities = append(lv.Entities, ev)
	}
	return lv, nil
}

// encodeEntity flattens one entity into the superset record.
func encodeEntity(e *entity.Entity) (EntityV1, error) {
	ev := EntityV1{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}

	switch e.Kind {
	case entity.KindObstacle:
		ev.Type = typeObstacle

	case entity.KindCrop:
		ev.Type = typeCrop
		ev.Species = e.Crop.Species
		ev.Stage = int(e.Crop.Stage)
		ev.DaysAtStage = e.Crop.DaysAtStage
		ev.DaysWithoutWater = e.Crop.DaysWithoutWater
		ev.WateredToday = e.Crop.WateredToday

	case entity.KindTree:
		ev.Type = typeTree
		ev.Stage = int(e.Tree.Stage)
		ev.DaysAtStage = e.Tree.DaysAtStage

	case entity.KindManaNode:
		ev.Type = typeManaNode
		ev.Charge = e.Mana.Charge

	case entity.KindShippingBin:
		ev.Type = typeShippingBin
		if e.Bin.Buffer != nil {
			iv, err := encodeItem(e.Bin.Buffer)
			if err != nil {
				return EntityV1{}, fmt.Errorf("bin buffer: %w", err)
			}
			ev.Buffer = &iv
		}
		for _, it := range e.Bin.Manifest {
			iv, err := encodeItem(it)
			if err != nil {
				return EntityV1{}, fmt.Errorf("bin manifest: %w", err)
			}
			ev.Manifest = append(ev.Manifest, iv)
		}

	case entity.KindBed:
		ev.Type = typeBed

	case entity.KindSign:
		ev.Type = typeSign
		ev.Text = e.Text

	default:
		return EntityV1{}, fmt.Errorf("encode entity: unknown kind %d", e.Kind)
	}
	return ev, nil
}
