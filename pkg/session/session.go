// Package session keeps per-browser state on the server, keyed by the id
// stored in the session cookie.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type IStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type Data struct {
	UserID    int64 `json:"user_id,omitempty"`
	NumVisits int   `json:"num_visits,omitempty"`
}

type Session struct {
	ID   string
	Data Data

	isNew    bool
	modified bool
	flushed  bool
	previous string
}

func New() *Session {
	return &Session{ID: uuid.NewString(), isNew: true}
}

func (s *Session) IsNew() bool {
	return s.isNew
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) Flushed() bool {
	return s.flushed
}

// Previous is the id dropped by the last Cycle or Flush, if any.
func (s *Session) Previous() string {
	return s.previous
}

func (s *Session) UserID() int64 {
	return s.Data.UserID
}

func (s *Session) IsAuthenticated() bool {
	return s.Data.UserID != 0
}

// IncrementVisits bumps the visit counter and returns the new value.
func (s *Session) IncrementVisits() int {
	s.Data.NumVisits++
	s.modified = true
	return s.Data.NumVisits
}

// Login binds the session to a driver under a fresh id. Data left by a
// different driver is dropped.
func (s *Session) Login(userID int64) {
	if s.Data.UserID != 0 && s.Data.UserID != userID {
		s.Data = Data{}
	}
	s.Cycle()
	s.Data.UserID = userID
	s.modified = true
}

// Cycle keeps the data but moves it to a new id.
func (s *Session) Cycle() {
	if !s.isNew && s.previous == "" {
		s.previous = s.ID
	}
	s.ID = uuid.NewString()
	s.modified = true
}

// Flush drops all data and the id.
func (s *Session) Flush() {
	if !s.isNew && s.previous == "" {
		s.previous = s.ID
	}
	s.ID = uuid.NewString()
	s.Data = Data{}
	s.flushed = true
	s.modified = false
}

// MarkSaved resets the bookkeeping flags after the store persisted s.
func (s *Session) MarkSaved() {
	s.isNew = false
	s.modified = false
	s.flushed = false
	s.previous = ""
}
