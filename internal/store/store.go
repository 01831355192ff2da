package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
	"go.uber.org/zap"
)

// Store owns the persisted work-calendar configuration. Every mutation is
// written back to disk immediately; readers receive an independent snapshot
// so the engine never observes a half-applied change.
type Store struct {
	path   string
	cfg    *workcal.Config
	logger *zap.Logger
}

// New creates a store backed by the given file path.
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration from disk. A missing file yields the
// all-default configuration, created on first save.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.cfg = workcal.DefaultConfig()
			return nil
		}
		return fmt.Errorf("failed to read calendar file: %w", err)
	}

	cfg, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse calendar file %s: %w", s.path, err)
	}

	s.cfg = cfg
	s.logger.Info("Calendar configuration loaded",
		zap.String("file", s.path),
		zap.Int("custom_days", len(cfg.CustomDays)))
	return nil
}

// Save writes the current configuration to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(encode(s.cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal calendar: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create calendar directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}

	s.logger.Debug("Calendar configuration saved", zap.String("file", s.path))
	return nil
}

// Config returns an immutable snapshot of the current configuration.
func (s *Store) Config() *workcal.Config {
	return s.cfg.Clone()
}

// SetInitialDate sets the first counted date and persists.
func (s *Store) SetInitialDate(date workcal.CalendarDate) error {
	s.cfg.InitialDate = &date
	return s.Save()
}

// SetHoursPerDay sets the default hours per counted day and persists.
func (s *Store) SetHoursPerDay(hours float64) error {
	if hours <= 0 || hours > 24 {
		return fmt.Errorf("hours per day must be in (0, 24], got %v", hours)
	}
	s.cfg.HoursPerDay = hours
	return s.Save()
}

// SetTotalHours sets the target total and persists. Zero clears the target.
func (s *Store) SetTotalHours(hours float64) error {
	if hours < 0 {
		return fmt.Errorf("total hours must not be negative, got %v", hours)
	}
	s.cfg.TotalHours = hours
	return s.Save()
}

// ExcludeWeekday adds a weekday to the global exclusions and persists. A
// change that would exclude all seven weekdays is rejected, since no date
// could ever count.
func (s *Store) ExcludeWeekday(day time.Weekday) error {
	if day < time.Sunday || day > time.Saturday {
		return fmt.Errorf("weekday out of range: %d", day)
	}
	next := s.cfg.ExcludedWeekdays.Add(day)
	if next.Count() == 7 {
		return fmt.Errorf("cannot exclude %s: at least one weekday must remain countable", day)
	}
	s.cfg.ExcludedWeekdays = next
	return s.Save()
}

// IncludeWeekday removes a weekday from the global exclusions and persists.
func (s *Store) IncludeWeekday(day time.Weekday) error {
	if day < time.Sunday || day > time.Saturday {
		return fmt.Errorf("weekday out of range: %d", day)
	}
	s.cfg.ExcludedWeekdays = s.cfg.ExcludedWeekdays.Remove(day)
	return s.Save()
}

// SetOverride stores a per-date override and persists. The override is
// normalized first: one equivalent to "no override" removes the entry
// instead, keeping the stored map canonical.
func (s *Store) SetOverride(date workcal.CalendarDate, ov workcal.DayOverride) error {
	if ov.CustomHours != nil && (*ov.CustomHours < 0 || *ov.CustomHours > 24) {
		return fmt.Errorf("custom hours must be in [0, 24], got %v", *ov.CustomHours)
	}
	normalized, deviates := ov.Normalize()
	if !deviates {
		delete(s.cfg.CustomDays, date)
	} else {
		s.cfg.CustomDays[date] = normalized
	}
	return s.Save()
}

// ClearOverride removes the override for a date and persists.
func (s *Store) ClearOverride(date workcal.CalendarDate) error {
	delete(s.cfg.CustomDays, date)
	return s.Save()
}

// Export writes the configuration document to w.
func (s *Store) Export(w io.Writer) error {
	data, err := json.MarshalIndent(encode(s.cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal calendar: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import replaces the configuration with the document read from r and
// persists it. The document is validated in full before anything is
// replaced, so a malformed import leaves the store untouched.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}
	cfg, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("invalid import document: %w", err)
	}
	s.cfg = cfg
	s.logger.Info("Calendar configuration imported",
		zap.Int("custom_days", len(cfg.CustomDays)))
	return s.Save()
}

func decodeJSON(data []byte) (*workcal.Config, error) {
	doc := document{HoursPerDay: workcal.DefaultHoursPerDay}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.decode()
}
