package save

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed save.schema.json
var schemaJSON string

var saveSchema = jsonschema.MustCompileString("save.schema.json", schemaJSON)

// WriteSave writes a save document as zstd-compressed JSON. The file is
// written to a temp path and renamed into place, so an interrupted write
// never clobbers an existing slot.
func WriteSave(path string, snap *SaveV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write save: %w", err)
	}

	werr := json.NewEncoder(enc).Encode(snap)
	if err := errors.Join(werr, enc.Close(), f.Close()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write save: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// ReadSave reads and validates a save document. The raw JSON is checked
// against the embedded schema before decoding, so a corrupt or truncated
// file fails here rather than as a half-restored session.
func ReadSave(path string) (*SaveV1, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	defer dec.Close()

	var raw any
	jd := json.NewDecoder(dec)
	jd.UseNumber()
	if err := jd.Decode(&raw); err != nil {
		return nil, fmt.Errorf("read save: decode: %w", err)
	}
	if err := saveSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("read save: schema: %w", err)
	}

	// Re-marshal the validated document into the typed form.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	var snap SaveV1
	if err := json.Unmarshal(buf, &snap); err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return &snap, nil
}
