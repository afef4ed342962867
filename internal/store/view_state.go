package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const viewStateKey = "view"

// ViewState is the small user-facing UI state restored on relaunch.
//
// It is intentionally best effort: callers should tolerate missing or
// invalid data and fall back to defaults.
type ViewState struct {
	Version int `json:"version"`

	// SortColumn is -1 when no sort is active.
	SortColumn     int  `json:"sortColumn"`
	SortDescending bool `json:"sortDescending,omitempty"`

	ColumnsVisible []bool `json:"columnsVisible,omitempty"`

	Search string `json:"search,omitempty"`
}

// DefaultViewState is the state of a fresh install.
func DefaultViewState() *ViewState {
	return &ViewState{Version: 1, SortColumn: -1}
}

// LoadViewState reads the persisted view state. Missing or unparseable
// state yields the defaults, not an error.
func (s *Store) LoadViewState(ctx context.Context) (*ViewState, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT v FROM view_state WHERE k = ?`, viewStateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultViewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load view state: %w", err)
	}

	st := DefaultViewState()
	if err := json.Unmarshal([]byte(raw), st); err != nil {
		return DefaultViewState(), nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return st, nil
}

// SaveViewState persists the view state, replacing any previous one.
func (s *Store) SaveViewState(ctx context.Context, st *ViewState) error {
	if st == nil {
		return errors.New("nil view state")
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO view_state(k, v) VALUES(?, ?)`, viewStateKey, string(raw)); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}
