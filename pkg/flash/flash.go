package flash

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "fireshop_flash"
	messageKey = "loginMessage"
)

// Store carries one-shot messages across a redirect using a signed cookie.
// Messages are scoped to the response cycle that reads them; nothing is held
// in process state.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore builds a flash store signing its cookie with the given secret.
func NewStore(secret string) (*Store, error) {
	if secret == "" {
		return nil, fmt.Errorf("flash secret is required")
	}

	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}, nil
}

// Push queues a message to be shown on the next rendered page.
func (s *Store) Push(w http.ResponseWriter, r *http.Request, message string) {
	// Get never fails fatally; a bad cookie yields a fresh session.
	sess, _ := s.cookies.Get(r, cookieName)
	sess.AddFlash(message, messageKey)
	_ = sess.Save(r, w)
}

// Pop returns the queued messages and clears them from the cookie.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := s.cookies.Get(r, cookieName)
	raw := sess.Flashes(messageKey)
	_ = sess.Save(r, w)

	if len(raw) == 0 {
		return nil
	}
	messages := make([]string, 0, len(raw))
	for _, entry := range raw {
		if msg, ok := entry.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
