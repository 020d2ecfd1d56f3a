package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/wjiaha0/hanzi/internal/calendar"
	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/progress"
	"github.com/wjiaha0/hanzi/internal/store"
)

// app is the loaded state shared by commands.
type app struct {
	ctx      context.Context
	store    store.Store
	catalog  *catalog.Catalog
	tracker  *progress.Tracker
	settings model.Settings
	clock    calendar.Clock
}

// openApp opens the database and loads the catalog, progress and settings,
// then records today's visit. An empty catalog is seeded with the built-in
// items. Read failures of
// progress or settings fall back to defaults with a warning.
func openApp(ctx context.Context) (*app, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}

	items, err := s.LoadItems(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	seeded := false
	if len(items) == 0 {
		if items, err = catalog.Seed(); err != nil {
			s.Close()
			return nil, err
		}
		seeded = true
	}
	cat, err := catalog.New(items, catalog.NewULIDSource())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if seeded {
		if err := s.SaveItems(ctx, cat.Items()); err != nil {
			warn("save seed catalog", err)
		}
	}

	p, err := progress.Load(ctx, s, logger)
	if err != nil {
		warn("load progress", err)
	}
	settings, err := progress.LoadSettings(ctx, s, logger)
	if err != nil {
		warn("load settings", err)
	}

	a := &app{
		ctx:      ctx,
		store:    s,
		catalog:  cat,
		tracker:  progress.NewTracker(p),
		settings: settings,
		clock:    calendar.NewSystemClock(),
	}
	dirty := false
	if n := a.tracker.Prune(cat.Contains); n > 0 {
		logger.Printf("dropped progress for %d items no longer in the catalog", n)
		dirty = true
	}
	// Every command is a visit: roll the day over before anything reads it.
	last := p.LastVisit
	a.tracker.RecordVisit(a.today())
	if a.tracker.Snapshot().LastVisit != last {
		dirty = true
	}
	if dirty {
		a.saveProgress()
	}
	return a, nil
}

func (a *app) close() {
	a.store.Close()
}

func (a *app) today() calendar.Date {
	return a.clock.Today()
}

// saveProgress persists the tracker. Failure leaves the in-memory state
// authoritative for the rest of the command.
func (a *app) saveProgress() {
	if err := progress.Save(a.ctx, a.store, a.tracker); err != nil {
		warn("save progress", err)
	}
}

func (a *app) saveSettings() {
	if err := progress.SaveSettings(a.ctx, a.store, a.settings); err != nil {
		warn("save settings", err)
	}
}

// saveCatalog persists the catalog and drops progress for removed items.
func (a *app) saveCatalog() error {
	if err := a.store.SaveItems(a.ctx, a.catalog.Items()); err != nil {
		return err
	}
	if a.tracker.Prune(a.catalog.Contains) > 0 {
		a.saveProgress()
	}
	return nil
}

// resolveItem finds a catalog position from a 0-based position or an exact
// character.
func (a *app) resolveItem(arg string) (int, error) {
	if pos, err := strconv.Atoi(arg); err == nil {
		if _, err := a.catalog.At(pos); err != nil {
			return 0, err
		}
		return pos, nil
	}
	for _, m := range a.catalog.Search(arg, 0) {
		if m.Item.Char == arg {
			return m.Position, nil
		}
	}
	return 0, fmt.Errorf("%w: no item %q", model.ErrNotFound, arg)
}

func isEmptySelection(err error) bool {
	return errors.Is(err, model.ErrEmptySelection)
}
