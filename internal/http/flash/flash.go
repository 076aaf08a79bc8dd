// Package flash carries one-shot notices across redirects in the
// signed cookie session.
package flash

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionName = "blog_flash"
	noticesKey  = "notices"
)

type Store struct {
	sessions sessions.Store
}

// Add stores a notice to display on the next rendered page.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, notice string) error {
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.AddFlash(notice, noticesKey)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Pop returns and clears the pending notices.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		// Sessions signed with a rotated key are discarded
		var cookieErr securecookie.Error
		if errors.As(err, &cookieErr) && cookieErr.IsDecode() {
			return []string{}, nil
		}

		return nil, errors.WithStack(err)
	}

	flashes := sess.Flashes(noticesKey)
	if len(flashes) == 0 {
		return []string{}, nil
	}

	if err := sess.Save(r, w); err != nil {
		return nil, errors.WithStack(err)
	}

	notices := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if notice, ok := f.(string); ok {
			notices = append(notices, notice)
		}
	}

	return notices, nil
}

func NewStore(sessions sessions.Store) *Store {
	return &Store{
		sessions: sessions,
	}
}
