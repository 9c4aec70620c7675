package cashbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/cashbook/logger"
	"go.uber.org/zap"
)

// DecodeLedger decodes a ledger from a JSON array of records.
//
// An empty input is an empty ledger. Any content that is not a JSON array of
// records returns an error wrapping ErrPersistenceCorrupt.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewLedger(), nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceCorrupt, err)
	}
	return &Ledger{records: records}, nil
}

// EncodeLedger writes the ledger as a JSON array, one record per line.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	var b bytes.Buffer
	b.WriteString("[")
	for i, r := range ledger.records {
		if i > 0 {
			b.WriteString(",")
		}
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", i+1, err)
		}
		b.WriteString("\n  ")
		b.Write(line)
	}
	if len(ledger.records) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// LoadLedger reads the ledger stored in file.
//
// A missing file is an empty ledger. A corrupt file is also read as an empty
// ledger, the problem is only logged: the next save overwrites it.
func LoadLedger(file string) (*Ledger, error) {
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("ledger file does not exist, starting an empty ledger", zap.String("file", file))
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", file, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if errors.Is(err, ErrPersistenceCorrupt) {
		logger.Warn("ledger file is corrupt, starting an empty ledger", zap.String("file", file), zap.Error(err))
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", file, err)
	}
	logger.Debug("ledger loaded", zap.String("file", file), zap.Int("records", ledger.Len()))
	return ledger, nil
}

// SaveLedger replaces the content of file with the ledger.
//
// The ledger is written to a temporary file in the same directory which is
// then renamed over file, so a failed write leaves the previous content.
func SaveLedger(file string, ledger *Ledger) error {
	var b bytes.Buffer
	if err := EncodeLedger(&b, ledger); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(file), filepath.Base(file)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	// no-op once renamed
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write temporary ledger file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not set permissions on %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", file, err)
	}
	logger.Debug("ledger saved", zap.String("file", file), zap.Int("records", ledger.Len()))
	return nil
}
