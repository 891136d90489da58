// Package session ties one selected artifact to its in-memory ledger and
// writes every change through to disk.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/barberbook/internal/activity"
	"github.com/cleared-dev/barberbook/internal/ledger"
	"github.com/cleared-dev/barberbook/internal/model"
	"github.com/cleared-dev/barberbook/internal/schema"
)

// Store loads and saves artifacts.
type Store interface {
	Load(path string) ([]model.ServiceRecord, bool, error)
	Save(path string, records []model.ServiceRecord) error
}

// Options configures Open.
type Options struct {
	Path   string
	Store  Store
	Pricer ledger.Pricer
	Log    zerolog.Logger
	// ActivityRoot, when set, receives an activity log entry per saved change.
	ActivityRoot string
	Now          func() time.Time
}

// Session is the explicit state of one run: the artifact path and its ledger.
type Session struct {
	Path   string
	Ledger *ledger.Ledger
	// Degraded is set when the artifact was malformed and the session started empty.
	Degraded bool

	store        Store
	log          zerolog.Logger
	activityRoot string
	now          func() time.Time
}

// Open loads the artifact at opts.Path. A missing file starts an empty ledger.
// A malformed artifact also starts empty, with Degraded set. Other read errors
// are returned.
func Open(opts Options) (*Session, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log.With().Str("artifact", filepath.Base(opts.Path)).Logger()

	s := &Session{
		Path:         opts.Path,
		store:        opts.Store,
		log:          log,
		activityRoot: opts.ActivityRoot,
		now:          now,
	}

	records, found, err := opts.Store.Load(opts.Path)
	switch {
	case errors.Is(err, schema.ErrMalformedArtifact):
		log.Warn().Err(err).Msg("artifact is malformed, starting with an empty ledger")
		records = nil
		s.Degraded = true
	case err != nil:
		return nil, fmt.Errorf("opening session: %w", err)
	case !found:
		log.Info().Msg("creating new ledger")
	default:
		log.Info().Int("records", len(records)).Msg("loaded ledger")
	}

	s.Ledger = ledger.New(opts.Pricer, records, now)
	return s, nil
}

// Add upserts a service and saves when the ledger changed. The returned error
// is non-nil only for save or lookup failures; the in-memory change is kept.
func (s *Session) Add(client string, age int, service string) (ledger.UpsertOutcome, error) {
	out, err := s.Ledger.Upsert(client, age, service)
	if err != nil {
		return out, fmt.Errorf("adding %s: %w", service, err)
	}
	if !out.Mutated() {
		s.log.Info().Str("service", service).Msg("unknown service")
		return out, nil
	}

	s.log.Info().
		Str("client", out.Record.Client).
		Str("service", out.Record.Service).
		Str("price", out.Record.UnitPrice.StringFixed(2)).
		Int("quantity", out.Record.Quantity).
		Stringer("status", out.Status).
		Msg("registered service")

	if err := s.save(); err != nil {
		return out, err
	}
	s.record(activity.ActionAdd, out.Record)
	return out, nil
}

// RemoveLast deletes the last record and saves.
func (s *Session) RemoveLast() (ledger.RemoveOutcome, error) {
	out := s.Ledger.RemoveLast()
	if out.Status == ledger.EmptyLedger {
		s.log.Info().Msg("nothing to remove")
		return out, nil
	}

	s.log.Info().
		Str("client", out.Record.Client).
		Str("service", out.Record.Service).
		Msg("removed service")

	if err := s.save(); err != nil {
		return out, err
	}
	s.record(activity.ActionRemove, out.Record)
	return out, nil
}

// List returns the grouped listing.
func (s *Session) List() ledger.Listing {
	return s.Ledger.List()
}

// Summary returns the aggregate view.
func (s *Session) Summary() ledger.Summary {
	return s.Ledger.Summary()
}

// Close saves the ledger one last time.
func (s *Session) Close() error {
	if err := s.save(); err != nil {
		return err
	}
	s.log.Info().Int("records", s.Ledger.Len()).Msg("session closed")
	s.record(activity.ActionClose, model.ServiceRecord{})
	return nil
}

func (s *Session) save() error {
	if err := s.store.Save(s.Path, s.Ledger.Records()); err != nil {
		s.log.Error().Err(err).Msg("save failed")
		return err
	}
	s.log.Debug().Int("records", s.Ledger.Len()).Msg("saved ledger")
	return nil
}

func (s *Session) record(action activity.Action, rec model.ServiceRecord) {
	if s.activityRoot == "" {
		return
	}
	e := activity.Entry{
		Timestamp: s.now(),
		Action:    action,
		Client:    rec.Client,
		Service:   rec.Service,
		Quantity:  rec.Quantity,
		Artifact:  filepath.Base(s.Path),
	}
	if err := activity.Append(s.activityRoot, []activity.Entry{e}); err != nil {
		s.log.Warn().Err(err).Msg("failed to write activity log")
	}
}
