package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "session"
	userIDKey   = "user_id"
)

// Principal is the minimal identity the session layer needs from a
// logged-in user.
type Principal interface {
	GetID() string
	GetUsername() string
}

// Manager wraps a signed-cookie store. The cookie carries only the
// user id; everything else lives in the database.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secretKey string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Establish binds the principal's id to a fresh session cookie.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, p Principal) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[userIDKey] = p.GetID()
	return session.Save(r, w)
}

// Clear invalidates the session. A request without a session is a no-op.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID returns the user id bound to the request's session cookie.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	session, _ := m.store.Get(r, sessionName)
	userID, ok := session.Values[userIDKey].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
