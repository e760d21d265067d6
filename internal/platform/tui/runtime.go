package tui

import (
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/loop"
	"github.com/vovakirdan/tui-farm/internal/save"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

// Runtime persists one farm: the inventory save file and, when a journal
// store is available, the session's events.
type Runtime struct {
	savePath string
	store    *storage.Store
	player   string
	session  string
	logger   *log.Logger
}

// RuntimeOptions configures a Runtime.
type RuntimeOptions struct {
	SavePath string         // Inventory file, "~" is expanded
	Store    *storage.Store // Optional journal
	Player   string
	Logger   *log.Logger // Defaults to a discarding logger
}

// NewRuntime creates a runtime.
func NewRuntime(opts RuntimeOptions) *Runtime {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runtime{
		savePath: config.ExpandHome(opts.SavePath),
		store:    opts.Store,
		player:   opts.Player,
		logger:   logger,
	}
}

// SavePath returns the resolved inventory file path.
func (r *Runtime) SavePath() string {
	return r.savePath
}

// Session returns the journal session ID, empty without a journal.
func (r *Runtime) Session() string {
	return r.session
}

// NewGame loads the saved inventory and creates a game from it. A missing
// or unreadable save starts from the default inventory and tells the
// player through a notice.
func (r *Runtime) NewGame(cfg config.FarmConfig, clk loop.Clock) *farm.Game {
	if clk == nil {
		clk = loop.SystemClock{}
	}
	inv, loadErr := save.Load(r.savePath)
	g := farm.New(cfg, inv, clk)

	switch {
	case loadErr == nil:
		r.logger.Info("inventory loaded", "path", r.savePath, "gold", inv.Count(farm.Gold))
	case errors.Is(loadErr, fs.ErrNotExist):
		r.logger.Warn("no save file, starting fresh", "path", r.savePath)
		g.Notify("Welcome!", "No saved farm found. Starting with 20 Gold.")
	default:
		r.logger.Warn("cannot read save file", "path", r.savePath, "error", loadErr)
		g.Notify("Save unreadable", "Your saved inventory could not be read. Starting with 20 Gold.")
	}

	if r.store != nil {
		id, err := r.store.StartSession(r.player, clk.Now())
		if err != nil {
			r.logger.Warn("cannot start journal session", "error", err)
		} else {
			r.session = id
			r.logger.Debug("journal session started", "session", id, "player", r.player)
		}
	}
	return g
}

// Flush writes the inventory and the queued events. Failures are logged
// and the game keeps running.
func (r *Runtime) Flush(g *farm.Game, fps int) error {
	var errs []error
	if err := save.Store(r.savePath, g.Inventory()); err != nil {
		r.logger.Warn("cannot write save file", "path", r.savePath, "error", err)
		errs = append(errs, err)
	}

	events := g.DrainEvents()
	if r.store != nil && r.session != "" && len(events) > 0 {
		if err := r.store.RecordEvents(r.session, r.player, events); err != nil {
			r.logger.Warn("cannot record journal events", "count", len(events), "error", err)
			errs = append(errs, err)
		}
	}

	r.logger.Debug("game saved", "fps", fps, "events", len(events), "state", g.State())
	return errors.Join(errs...)
}

// Close flushes a final time and ends the journal session.
func (r *Runtime) Close(g *farm.Game, at time.Time) error {
	err := r.Flush(g, 0)
	if r.store != nil && r.session != "" {
		if endErr := r.store.EndSession(r.session, at); endErr != nil {
			r.logger.Warn("cannot end journal session", "error", endErr)
			err = errors.Join(err, endErr)
		}
		r.session = ""
	}
	return err
}
