// Package rateboard persists the market-rate list as a flat JSON file,
// deliberately separate from the relational schema. The list is ordered
// newest-first: Add prepends and Delete removes by position.
package rateboard

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned by Delete for a position outside the list.
var ErrIndexOutOfRange = errors.New("rate index out of range")

// Entry is one market-rate record. Date is stamped at insertion time.
type Entry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Trend    string          `json:"trend"`
	Date     string          `json:"date"`
}

// Store serializes all writers behind a mutex and replaces the file with a
// write-temp-then-rename, so concurrent adds cannot lose updates and a
// crashed writer never leaves a half-written list behind.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store { return &Store{path: path} }

// List returns the current board, newest-first. A missing file is an empty
// board, not an error.
func (s *Store) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add prepends the entry and stamps it with today's date.
func (s *Store) Add(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	e.Date = time.Now().Format("2006-01-02")
	entries = append([]Entry{e}, entries...)
	return s.save(entries)
}

// Delete removes the entry at position index (0 = newest), bounds-checked.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}
	entries = append(entries[:index], entries[index+1:]...)
	return s.save(entries)
}

func (s *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".rates-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
