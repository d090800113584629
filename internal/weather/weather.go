// Package weather provides the deterministic daily weather roll.
// Weather is a pure function of (world seed, day) so a reloaded save
// replays the exact same skies; nothing here consults real time or
// external services.
package weather

import (
	"encoding/binary"
	"hash/fnv"
)

// Kind is the day's weather.
type Kind uint8

const (
	Clear Kind = iota
	Rain
	Storm
)

// Name returns a human-readable weather name.
func Name(k Kind) string {
	switch k {
	case Rain:
		return "Rain"
	case Storm:
		return "Storm"
	default:
		return "Clear"
	}
}

// IsWet reports whether the weather waters tilled soil.
func IsWet(k Kind) bool {
	return k == Rain || k == Storm
}

// ForDay rolls the weather for a day: roughly 60% clear, 30% rain,
// 10% storm, deterministic per (seed, day).
func ForDay(worldSeed int64, day int) Kind {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(worldSeed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(day))
	h.Write(buf[:])

	switch roll := h.Sum64() % 100; {
	case roll < 60:
		return Clear
	case roll < 90:
		return Rain
	default:
		return Storm
	}
}
