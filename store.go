package cashbook

import (
	"fmt"

	"github.com/etnz/cashbook/logger"
	"go.uber.org/zap"
)

// Store is a ledger mirrored to a file.
//
// Every mutation is applied to the in-memory ledger and then the whole ledger
// is saved. If the save fails the in-memory ledger keeps the mutation and the
// error is returned.
type Store struct {
	file   string
	ledger *Ledger
}

// OpenStore loads the ledger stored in file, see LoadLedger.
func OpenStore(file string) (*Store, error) {
	ledger, err := LoadLedger(file)
	if err != nil {
		return nil, err
	}
	return &Store{file: file, ledger: ledger}, nil
}

// File returns the path of the ledger file.
func (s *Store) File() string { return s.file }

// Ledger returns the in-memory ledger. Mutating it directly does not save it.
func (s *Store) Ledger() *Ledger { return s.ledger }

// Save writes the whole ledger to the store file.
func (s *Store) Save() error {
	return SaveLedger(s.file, s.ledger)
}

// Create appends a new record and saves the ledger.
func (s *Store) Create(date string, category Category, amount Money, description string) (Record, error) {
	r, err := s.ledger.Create(date, category, amount, description)
	if err != nil {
		return Record{}, err
	}
	logger.Info("record created", zap.Int("position", s.ledger.Len()), zap.Stringer("amount", r.Amount))
	return r, s.save("create")
}

// Update replaces the record at the 1-based position i and saves the ledger.
func (s *Store) Update(i int, date string, category Category, amount Money, description string) (Record, error) {
	r, err := s.ledger.Update(i, date, category, amount, description)
	if err != nil {
		return Record{}, err
	}
	logger.Info("record updated", zap.Int("position", i), zap.Stringer("amount", r.Amount))
	return r, s.save("update")
}

// Delete removes the record at the 1-based position i and saves the ledger.
func (s *Store) Delete(i int) (Record, error) {
	r, err := s.ledger.Delete(i)
	if err != nil {
		return Record{}, err
	}
	logger.Info("record deleted", zap.Int("position", i))
	return r, s.save("delete")
}

func (s *Store) save(op string) error {
	if err := s.Save(); err != nil {
		return fmt.Errorf("%s applied in memory but not saved: %w", op, err)
	}
	return nil
}
