package app

import (
	"context"

	"github.com/rcliao/memo/internal/memo"
	"github.com/rcliao/memo/internal/model"
)

// Permanent deletion is a two-step transition: RequestDelete marks an
// archived memo as pending, then ConfirmDelete or CancelDelete resolves it.
// Any other action drops a pending request.

// RequestDelete marks an archived memo for deletion. It reports false when
// id is not in the archive.
func (a *App) RequestDelete(id int64) bool {
	if _, loc, ok := a.memos.Find(id); !ok || loc != memo.InArchived {
		a.pending = 0
		return false
	}
	a.pending = id
	a.log.Debug("delete requested", "id", id)
	return true
}

// PendingDelete returns the memo awaiting confirmation, if any.
func (a *App) PendingDelete() (model.Memo, bool) {
	if a.pending == 0 {
		return model.Memo{}, false
	}
	m, loc, ok := a.memos.Find(a.pending)
	if !ok || loc != memo.InArchived {
		return model.Memo{}, false
	}
	return m, true
}

// ConfirmDelete permanently removes the pending memo.
func (a *App) ConfirmDelete(ctx context.Context) (bool, error) {
	id := a.pending
	a.pending = 0
	if id == 0 {
		return false, nil
	}
	ok, err := a.memos.PermanentlyDelete(ctx, id)
	a.log.Debug("memo permanently deleted", "id", id, "ok", ok)
	return ok, err
}

// CancelDelete drops the pending request.
func (a *App) CancelDelete() {
	if a.pending != 0 {
		a.log.Debug("delete cancelled", "id", a.pending)
	}
	a.pending = 0
}
