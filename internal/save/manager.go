package save

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"sagebrook/internal/config"
	"sagebrook/internal/game"
)

// Manager owns a save directory: one compressed document per slot plus
// the SQLite catalog.
type Manager struct {
	dir   string
	cfg   config.Config
	index *Index
}

// Open prepares a save directory and its catalog.
func Open(dir string, cfg config.Config) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open saves: %w", err)
	}
	idx, err := OpenIndex(filepath.Join(dir, "slots.db"))
	if err != nil {
		return nil, err
	}
	// A catalog stamped by a newer (or older) build is refused rather
	// than silently rewritten.
	got, err := idx.GetMeta("format_version")
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := idx.SetMeta("format_version", strconv.Itoa(FormatVersion)); err != nil {
			idx.Close()
			return nil, fmt.Errorf("open saves: %w", err)
		}
	case err != nil:
		idx.Close()
		return nil, fmt.Errorf("open saves: %w", err)
	case got != strconv.Itoa(FormatVersion):
		idx.Close()
		return nil, fmt.Errorf("open saves: catalog format %s, want %d", got, FormatVersion)
	}
	return &Manager{dir: dir, cfg: cfg, index: idx}, nil
}

// Close releases the catalog.
func (m *Manager) Close() error {
	return m.index.Close()
}

func (m *Manager) slotPath(slot int) string {
	return filepath.Join(m.dir, fmt.Sprintf("slot_%d.sav.zst", slot))
}

// Save captures the session into a slot. The session is untouched and
// an existing slot file survives any failure.
func (m *Manager) Save(slot int, s *game.Session) error {
	if slot < 0 {
		return fmt.Errorf("save: bad slot %d", slot)
	}
	snap, err := Capture(s)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	if err := WriteSave(m.slotPath(slot), snap); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	err = m.index.Record(SlotInfo{
		Slot:           slot,
		PlayerName:     snap.Player.Name,
		Day:            snap.Day,
		Gold:           snap.Player.Gold,
		ActiveLocation: snap.ActiveLocation,
		SavedAt:        snap.SavedAt,
	})
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}

	slog.Info("session saved",
		"slot", slot,
		"day", snap.Day,
		"location", snap.ActiveLocation,
	)
	return nil
}

// Load restores the session stored in a slot.
func (m *Manager) Load(slot int) (*game.Session, error) {
	snap, err := ReadSave(m.slotPath(slot))
	if err != nil {
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}
	s, err := Restore(snap, m.cfg)
	if err != nil {
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}

	slog.Info("session loaded",
		"slot", slot,
		"day", snap.Day,
		"location", snap.ActiveLocation,
	)
	return s, nil
}

// Slots lists the recorded slots.
func (m *Manager) Slots() ([]SlotInfo, error) {
	return m.index.Slots()
}

// Delete removes a slot's file and catalog row.
func (m *Manager) Delete(slot int) error {
	if err := os.Remove(m.slotPath(slot)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %d: %w", slot, err)
	}
	return m.index.Forget(slot)
}
