// Command sagebrook runs a headless Sagebrook session: it resumes the
// configured save slot (or starts a fresh farm), plays a scripted
// farmhand routine for a number of in-game days, and saves the result.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/game"
	"sagebrook/internal/item"
	"sagebrook/internal/save"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	seed := int64(envInt("SAGEBROOK_SEED", 42))
	saveDir := envStr("SAGEBROOK_SAVE_DIR", "data/saves")
	cfgPath := envStr("SAGEBROOK_CONFIG", "")
	days := envInt("SAGEBROOK_DAYS", 3)
	slot := envInt("SAGEBROOK_SLOT", 0)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	mgr, err := save.Open(saveDir, cfg)
	if err != nil {
		slog.Error("failed to open save directory", "dir", saveDir, "error", err)
		os.Exit(1)
	}
	defer mgr.Close()

	session := resumeOrStart(mgr, slot, seed, cfg)
	slog.Info("session ready",
		"player", session.Player.Name,
		"day", session.Clock.Day,
		"location", session.Active.Name,
		"gold", session.Player.Gold,
	)

	for i := 0; i < days; i++ {
		playOneDay(session)
		if err := mgr.Save(slot, session); err != nil {
			slog.Error("autosave failed", "error", err)
			os.Exit(1)
		}
	}

	slots, err := mgr.Slots()
	if err != nil {
		slog.Error("failed to list slots", "error", err)
		os.Exit(1)
	}
	for _, info := range slots {
		fmt.Printf("slot %d: %s — day %d, %dg, %s (%s)\n",
			info.Slot, info.PlayerName, info.Day, info.Gold,
			info.ActiveLocation, info.SavedAt)
	}
	fmt.Printf("%s retires on day %d with %d gold.\n",
		session.Player.Name, session.Clock.Day, session.Player.Gold)
}

func resumeOrStart(mgr *save.Manager, slot int, seed int64, cfg config.Config) *game.Session {
	slots, err := mgr.Slots()
	if err == nil {
		for _, info := range slots {
			if info.Slot != slot {
				continue
			}
			s, err := mgr.Load(slot)
			if err == nil {
				return s
			}
			slog.Warn("slot unreadable, starting fresh", "slot", slot, "error", err)
		}
	}
	return game.NewSession("Rook", seed, cfg)
}

// Field plots the routine works, relative to the farmhouse.
var plots = [][2]int{{5, 8}, {6, 8}, {7, 8}, {5, 9}, {6, 9}, {7, 9}}

// playOneDay runs the scripted routine: tend the plots in the morning,
// ship anything harvested, then sleep until the next day.
func playOneDay(s *game.Session) {
	day := s.Clock.Day
	for _, p := range plots {
		tendPlot(s, p[0], p[1])
	}
	shipProduce(s)
	sleepAtBed(s)
	slog.Info("day played",
		"day", day,
		"gold", s.Player.Gold,
		"stamina", s.Player.Stamina,
	)
}

// tendPlot stands the player on a plot tile and tills, plants, waters,
// or harvests depending on what is there.
func tendPlot(s *game.Session, tx, ty int) {
	standAt(s, tx, ty)
	cx := float64(tx*entity.TileSize) + entity.TileSize/2
	cy := float64(ty*entity.TileSize) + entity.TileSize/2

	if crop := s.Active.EntityAt(tx, ty); crop != nil && crop.Kind == entity.KindCrop {
		if res := s.Interact(cx, cy); res.Outcome == game.OutcomeHarvested {
			slog.Info("harvested", "tile", fmt.Sprintf("%d,%d", tx, ty))
		}
		if s.Active.EntityAt(tx, ty) != nil {
			selectTool(s, item.ToolWateringCan)
			s.UseTool(cx, cy)
		}
		return
	}

	selectTool(s, item.ToolHoe)
	s.UseTool(cx, cy)
	if selectSeeds(s) {
		s.UseTool(cx, cy)
	}
	selectTool(s, item.ToolWateringCan)
	s.UseTool(cx, cy)
}

// shipProduce drops every harvested crop stack into the shipping bin.
func shipProduce(s *game.Session) {
	bin := findKind(s, entity.KindShippingBin)
	if bin == nil {
		return
	}
	btx, bty := bin.TileCoords()
	standAt(s, btx, bty+1)
	cx := float64(btx*entity.TileSize) + entity.TileSize/2
	cy := float64(bty*entity.TileSize) + entity.TileSize/2

	for i, it := range s.Player.Inventory.Slots {
		if it == nil || it.Kind != item.KindMaterial || isSeed(it.Material) {
			continue
		}
		if s.Registry.SellPrice(it) == 0 {
			continue
		}
		s.Player.Inventory.Select(i)
		s.Interact(cx, cy)
	}
}

// sleepAtBed walks to the bed and runs the fade until the new day.
func sleepAtBed(s *game.Session) {
	bed := findKind(s, entity.KindBed)
	if bed == nil {
		// No bed anywhere: advance the clock the hard way.
		s.Clock.ForceNewDay()
		return
	}
	btx, bty := bed.TileCoords()
	standAt(s, btx, bty+1)
	if !s.RequestSleep() {
		s.Clock.ForceNewDay()
		return
	}
	for s.Transition.Busy() {
		s.Update(0.1)
	}
}

func standAt(s *game.Session, tx, ty int) {
	s.Player.X = float64(tx*entity.TileSize) + entity.TileSize/2
	s.Player.Y = float64((ty + 1) * entity.TileSize)
}

func findKind(s *game.Session, kind entity.Kind) *entity.Entity {
	for _, e := range s.Active.Entities {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

func selectTool(s *game.Session, tool item.ToolID) {
	for i, it := range s.Player.Inventory.Slots {
		if it != nil && it.Kind == item.KindTool && it.Tool == tool {
			s.Player.Inventory.Select(i)
			return
		}
	}
}

func selectSeeds(s *game.Session) bool {
	for i, it := range s.Player.Inventory.Slots {
		if it != nil && it.Kind == item.KindMaterial && isSeed(it.Material) {
			s.Player.Inventory.Select(i)
			return true
		}
	}
	return false
}

func isSeed(key string) bool {
	const suffix = "_seeds"
	return len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
