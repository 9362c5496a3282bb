// Package app implements the user actions. Each action validates its
// input, mutates the memo store (which persists), and leaves the app ready
// for a fresh Render.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rcliao/memo/internal/memo"
	"github.com/rcliao/memo/internal/model"
	"github.com/rcliao/memo/internal/render"
	"github.com/rcliao/memo/internal/store"
	"github.com/rcliao/memo/internal/view"
)

// Options configures an App.
type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// App ties the memo store, view state, theme and renderer together.
type App struct {
	persist  *store.Persistence
	memos    *memo.Store
	state    view.State
	renderer *render.Renderer
	log      *slog.Logger

	pending int64 // archived memo id awaiting delete confirmation, 0 if none
	cursor  int
}

// New loads persisted state and applies the saved theme.
func New(ctx context.Context, p *store.Persistence, opts Options) (*App, error) {
	snap, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var storeOpts []memo.Option
	if opts.Now != nil {
		storeOpts = append(storeOpts, memo.WithClock(opts.Now))
	}

	a := &App{
		persist:  p,
		memos:    memo.New(snap.Active, snap.Archived, p, storeOpts...),
		state:    view.NewState(),
		renderer: render.New(snap.Theme),
		log:      logger,
		cursor:   -1,
	}
	logger.Debug("loaded state", "active", len(snap.Active), "archived", len(snap.Archived), "theme", snap.Theme)
	return a, nil
}

// Store exposes the underlying memo store.
func (a *App) Store() *memo.Store { return a.memos }

// State returns the current view state.
func (a *App) State() view.State { return a.state }

// Theme returns the applied theme.
func (a *App) Theme() model.Theme { return a.renderer.Theme() }

// Renderer returns the renderer in use.
func (a *App) Renderer() *render.Renderer { return a.renderer }

// Displayed returns the memos visible under the current view state.
func (a *App) Displayed() []model.Memo {
	return view.Filter(a.memos.Active(), a.memos.Archived(), a.state)
}

// Tags returns the distinct tags of active memos.
func (a *App) Tags() []string {
	return view.Tags(a.memos.Active())
}

// SetCursor marks the displayed memo at index i as selected; -1 clears it.
func (a *App) SetCursor(i int) { a.cursor = i }

// Frame builds the render input for the current state.
func (a *App) Frame() render.Frame {
	f := render.Frame{
		State:  a.state,
		Memos:  a.Displayed(),
		Tags:   a.Tags(),
		Cursor: a.cursor,
	}
	if m, ok := a.PendingDelete(); ok {
		f.PendingDelete = &m
	}
	return f
}

// Render draws the current state.
func (a *App) Render() string {
	return a.renderer.Render(a.Frame())
}

// Add creates a memo from raw input. tagsCSV is a comma-separated list.
// Blank text is ignored and reports ok=false.
func (a *App) Add(ctx context.Context, text string, priority int, tagsCSV string) (model.Memo, bool, error) {
	a.pending = 0
	m, ok, err := a.memos.Add(ctx, text, priority, model.ParseTags(tagsCSV))
	if ok {
		a.log.Debug("memo added", "id", m.ID, "priority", m.Priority, "tags", m.Tags)
	}
	return m, ok, err
}

// EditText replaces the text of an active memo.
func (a *App) EditText(ctx context.Context, id int64, text string) (bool, error) {
	a.pending = 0
	ok, err := a.memos.UpdateText(ctx, id, text)
	a.log.Debug("memo text updated", "id", id, "ok", ok)
	return ok, err
}

// SetPriority changes the priority of an active memo.
func (a *App) SetPriority(ctx context.Context, id int64, priority int) (bool, error) {
	a.pending = 0
	ok, err := a.memos.UpdatePriority(ctx, id, priority)
	a.log.Debug("memo priority updated", "id", id, "priority", priority, "ok", ok)
	return ok, err
}

// Archive moves an active memo to the archive.
func (a *App) Archive(ctx context.Context, id int64) (bool, error) {
	a.pending = 0
	ok, err := a.memos.Archive(ctx, id)
	a.log.Debug("memo archived", "id", id, "ok", ok)
	return ok, err
}

// Restore moves an archived memo back to the active list.
func (a *App) Restore(ctx context.Context, id int64) (bool, error) {
	a.pending = 0
	ok, err := a.memos.Restore(ctx, id)
	a.log.Debug("memo restored", "id", id, "ok", ok)
	return ok, err
}

// Sort orders active memos by descending priority. It only acts in the main
// view and reports whether it did.
func (a *App) Sort(ctx context.Context) (bool, error) {
	a.pending = 0
	if a.state.Mode != view.Main {
		return false, nil
	}
	a.log.Debug("sorting active memos by priority")
	return true, a.memos.SortActiveByPriority(ctx)
}

// ToggleView switches between the main and archive views.
func (a *App) ToggleView() {
	a.pending = 0
	a.state.ToggleView()
	a.cursor = -1
}

// SetView switches to mode, clearing the tag filter if the view changes.
func (a *App) SetView(mode view.Mode) {
	if a.state.Mode != mode {
		a.ToggleView()
	}
}

// SelectTag toggles the tag filter. It has no effect outside the main view.
func (a *App) SelectTag(tag string) {
	a.pending = 0
	if a.state.Mode != view.Main {
		return
	}
	if tag == "" {
		a.state.ClearTag()
		return
	}
	a.state.SelectTag(tag)
}

// CycleTag moves the tag filter to the next (step=1) or previous (step=-1)
// active tag.
func (a *App) CycleTag(step int) {
	if a.state.Mode != view.Main {
		return
	}
	a.pending = 0
	a.state.ActiveTag = view.CycleTag(a.Tags(), a.state.ActiveTag, step)
}

// SetSearch sets the free-text search.
func (a *App) SetSearch(term string) {
	a.pending = 0
	a.state.SetSearch(term)
}

// ToggleTheme flips between light and dark and persists the choice.
func (a *App) ToggleTheme(ctx context.Context) (model.Theme, error) {
	return a.SetTheme(ctx, a.renderer.Theme().Toggle())
}

// SetTheme applies and persists theme.
func (a *App) SetTheme(ctx context.Context, theme model.Theme) (model.Theme, error) {
	a.renderer.SetTheme(theme)
	if err := a.persist.SaveTheme(ctx, theme); err != nil {
		return theme, fmt.Errorf("save theme: %w", err)
	}
	a.log.Debug("theme applied", "theme", theme)
	return theme, nil
}
