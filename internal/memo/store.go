// Package memo holds the authoritative in-memory memo state: the active and
// archived sequences. Every mutation rewrites the affected persisted records
// before returning, and is undone in memory when that write fails.
package memo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rcliao/memo/internal/model"
)

// Saver persists full memo sequences.
type Saver interface {
	SaveActive(ctx context.Context, memos []model.Memo) error
	SaveArchived(ctx context.Context, memos []model.Memo) error
}

// Location says which sequence owns a memo.
type Location int

const (
	Nowhere Location = iota
	InActive
	InArchived
)

func (l Location) String() string {
	switch l {
	case InActive:
		return "active"
	case InArchived:
		return "archived"
	}
	return "none"
}

// Store owns the active and archived sequences. It is not safe for
// concurrent use.
type Store struct {
	active   []model.Memo
	archived []model.Memo
	saver    Saver
	now      func() time.Time
	lastID   int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store from previously loaded sequences. Memos with a zero or
// duplicate id are given a fresh one so every id is unique.
func New(active, archived []model.Memo, saver Saver, opts ...Option) *Store {
	s := &Store{saver: saver, now: time.Now}
	for _, o := range opts {
		o(s)
	}

	s.active = cloneAll(active)
	s.archived = cloneAll(archived)

	for _, list := range [][]model.Memo{s.active, s.archived} {
		for _, m := range list {
			if m.ID > s.lastID {
				s.lastID = m.ID
			}
		}
	}

	seen := map[int64]bool{}
	s.active = s.reassign(s.active, seen)
	s.archived = s.reassign(s.archived, seen)
	return s
}

func (s *Store) reassign(memos []model.Memo, seen map[int64]bool) []model.Memo {
	for i := range memos {
		if memos[i].ID == 0 || seen[memos[i].ID] {
			memos[i].ID = s.nextID()
		}
		seen[memos[i].ID] = true
	}
	return memos
}

// nextID returns the clock reading in milliseconds, bumped past the highest
// id handed out so far.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Active returns a copy of the active sequence.
func (s *Store) Active() []model.Memo { return cloneAll(s.active) }

// Archived returns a copy of the archived sequence.
func (s *Store) Archived() []model.Memo { return cloneAll(s.archived) }

// Find looks id up in both sequences.
func (s *Store) Find(id int64) (model.Memo, Location, bool) {
	if i := indexOf(s.active, id); i >= 0 {
		return s.active[i].Clone(), InActive, true
	}
	if i := indexOf(s.archived, id); i >= 0 {
		return s.archived[i].Clone(), InArchived, true
	}
	return model.Memo{}, Nowhere, false
}

// Add creates a memo and prepends it to the active sequence. Blank text is a
// no-op and reports ok=false.
func (s *Store) Add(ctx context.Context, text string, priority int, tags []string) (model.Memo, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Memo{}, false, nil
	}

	m := model.Memo{
		ID:        s.nextID(),
		Text:      text,
		Priority:  model.ClampPriority(priority),
		Timestamp: model.FormatTimestamp(s.now()),
		Tags:      model.CleanTags(tags),
	}
	prevActive, prevArchived := s.snapshot()
	s.active = append([]model.Memo{m}, s.active...)

	if err := s.commit(ctx, prevActive, prevArchived, s.saveActive); err != nil {
		return model.Memo{}, false, err
	}
	return m.Clone(), true, nil
}

// UpdateText replaces the text of an active memo and refreshes its timestamp.
func (s *Store) UpdateText(ctx context.Context, id int64, text string) (bool, error) {
	i := indexOf(s.active, id)
	if i < 0 {
		return false, nil
	}
	prevActive, prevArchived := s.snapshot()
	s.active[i].Text = text
	s.active[i].Timestamp = model.FormatTimestamp(s.now())
	if err := s.commit(ctx, prevActive, prevArchived, s.saveActive); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePriority sets the priority of an active memo, clamped to [1,5].
// The timestamp is left alone.
func (s *Store) UpdatePriority(ctx context.Context, id int64, priority int) (bool, error) {
	i := indexOf(s.active, id)
	if i < 0 {
		return false, nil
	}
	prevActive, prevArchived := s.snapshot()
	s.active[i].Priority = model.ClampPriority(priority)
	if err := s.commit(ctx, prevActive, prevArchived, s.saveActive); err != nil {
		return false, err
	}
	return true, nil
}

// Archive moves an active memo to the head of the archived sequence.
func (s *Store) Archive(ctx context.Context, id int64) (bool, error) {
	prevActive, prevArchived := s.snapshot()
	var ok bool
	s.active, s.archived, ok = move(s.active, s.archived, id)
	if !ok {
		return false, nil
	}
	if err := s.commit(ctx, prevActive, prevArchived, s.saveBoth); err != nil {
		return false, err
	}
	return true, nil
}

// Restore moves an archived memo back to the head of the active sequence.
func (s *Store) Restore(ctx context.Context, id int64) (bool, error) {
	prevActive, prevArchived := s.snapshot()
	var ok bool
	s.archived, s.active, ok = move(s.archived, s.active, id)
	if !ok {
		return false, nil
	}
	if err := s.commit(ctx, prevActive, prevArchived, s.saveBoth); err != nil {
		return false, err
	}
	return true, nil
}

// PermanentlyDelete removes an archived memo. This cannot be undone.
func (s *Store) PermanentlyDelete(ctx context.Context, id int64) (bool, error) {
	i := indexOf(s.archived, id)
	if i < 0 {
		return false, nil
	}
	prevActive, prevArchived := s.snapshot()
	s.archived = append(s.archived[:i:i], s.archived[i+1:]...)
	if err := s.commit(ctx, prevActive, prevArchived, s.saveArchived); err != nil {
		return false, err
	}
	return true, nil
}

// SortActiveByPriority orders the active sequence by descending priority.
// The sort is stable, so equal priorities keep their relative order.
func (s *Store) SortActiveByPriority(ctx context.Context) error {
	prevActive, prevArchived := s.snapshot()
	sort.SliceStable(s.active, func(i, j int) bool {
		return s.active[i].Priority > s.active[j].Priority
	})
	return s.commit(ctx, prevActive, prevArchived, s.saveActive)
}

// Import adds memos whose id is not already known, keeping the sequence they
// came from. Imported memos are appended after existing ones, in document
// order. It returns how many memos were added.
func (s *Store) Import(ctx context.Context, active, archived []model.Memo) (int, error) {
	seen := map[int64]bool{}
	for _, m := range s.active {
		seen[m.ID] = true
	}
	for _, m := range s.archived {
		seen[m.ID] = true
	}

	prevActive, prevArchived := s.snapshot()
	added := 0
	take := func(dst []model.Memo, src []model.Memo) []model.Memo {
		for _, m := range src {
			if m.ID != 0 && seen[m.ID] {
				continue
			}
			m = m.Clone()
			if m.ID == 0 {
				m.ID = s.nextID()
			} else if m.ID > s.lastID {
				s.lastID = m.ID
			}
			seen[m.ID] = true
			dst = append(dst, m)
			added++
		}
		return dst
	}
	s.active = take(s.active, active)
	s.archived = take(s.archived, archived)

	if added == 0 {
		return 0, nil
	}
	if err := s.commit(ctx, prevActive, prevArchived, s.saveBoth); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *Store) snapshot() (active, archived []model.Memo) {
	return cloneAll(s.active), cloneAll(s.archived)
}

// commit persists the current sequences with save. On failure the sequences
// go back to the given snapshot and save runs once more so a half-written
// pair of records matches memory again. The original error is returned.
func (s *Store) commit(ctx context.Context, active, archived []model.Memo, save func(context.Context) error) error {
	err := save(ctx)
	if err == nil {
		return nil
	}
	s.active, s.archived = active, archived
	_ = save(ctx)
	return err
}

func (s *Store) saveActive(ctx context.Context) error {
	if err := s.saver.SaveActive(ctx, s.active); err != nil {
		return fmt.Errorf("save active: %w", err)
	}
	return nil
}

func (s *Store) saveArchived(ctx context.Context) error {
	if err := s.saver.SaveArchived(ctx, s.archived); err != nil {
		return fmt.Errorf("save archived: %w", err)
	}
	return nil
}

func (s *Store) saveBoth(ctx context.Context) error {
	if err := s.saveActive(ctx); err != nil {
		return err
	}
	return s.saveArchived(ctx)
}

// move removes id from src and prepends it to dst.
func move(src, dst []model.Memo, id int64) ([]model.Memo, []model.Memo, bool) {
	i := indexOf(src, id)
	if i < 0 {
		return src, dst, false
	}
	m := src[i]
	src = append(src[:i:i], src[i+1:]...)
	dst = append([]model.Memo{m}, dst...)
	return src, dst, true
}

func indexOf(memos []model.Memo, id int64) int {
	for i, m := range memos {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(memos []model.Memo) []model.Memo {
	out := make([]model.Memo, len(memos))
	for i, m := range memos {
		out[i] = m.Clone()
	}
	return out
}
