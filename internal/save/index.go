package save

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Index is the SQLite slot catalog kept next to the save files. It holds
// just enough per slot to draw a load menu without decompressing any
// save document.
type Index struct {
	conn *sqlx.DB
}

// SlotInfo is one row of the load menu.
type SlotInfo struct {
	Slot           int    `db:"slot"`
	PlayerName     string `db:"player_name"`
	Day            int    `db:"day"`
	Gold           int    `db:"gold"`
	ActiveLocation string `db:"active_location"`
	SavedAt        string `db:"saved_at"`
}

// OpenIndex opens or creates the slot catalog at the given path.
func OpenIndex(path string) (*Index, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	idx := &Index{conn: conn}
	if err := idx.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate index: %w", err)
	}
	return idx, nil
}

// Close closes the catalog connection.
func (idx *Index) Close() error {
	return idx.conn.Close()
}

func (idx *Index) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		slot INTEGER PRIMARY KEY,
		player_name TEXT NOT NULL,
		day INTEGER NOT NULL,
		gold INTEGER NOT NULL,
		active_location TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS save_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := idx.conn.Exec(schema)
	return err
}

// Record upserts one slot row.
func (idx *Index) Record(info SlotInfo) error {
	_, err := idx.conn.Exec(`INSERT OR REPLACE INTO save_slots
		(slot, player_name, day, gold, active_location, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		info.Slot, info.PlayerName, info.Day, info.Gold,
		info.ActiveLocation, info.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("record slot %d: %w", info.Slot, err)
	}
	return nil
}

// Slots lists every recorded slot in slot order.
func (idx *Index) Slots() ([]SlotInfo, error) {
	var rows []SlotInfo
	err := idx.conn.Select(&rows,
		"SELECT slot, player_name, day, gold, active_location, saved_at FROM save_slots ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return rows, nil
}

// Forget removes one slot row. Missing rows are not an error.
func (idx *Index) Forget(slot int) error {
	_, err := idx.conn.Exec("DELETE FROM save_slots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("forget slot %d: %w", slot, err)
	}
	return nil
}

// SetMeta stores a key-value pair in the catalog metadata.
func (idx *Index) SetMeta(key, value string) error {
	_, err := idx.conn.Exec(
		"INSERT OR REPLACE INTO save_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a catalog metadata value.
func (idx *Index) GetMeta(key string) (string, error) {
	var value string
	err := idx.conn.Get(&value, "SELECT value FROM save_meta WHERE key = ?", key)
	return value, err
}
