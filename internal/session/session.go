// Package session is the single source of truth for who is logged in.
//
// The token and the user record are persisted in a KV store under the keys
// "token" and "userInfo". Every Write and Clear broadcasts the new state to
// subscribers synchronously, before returning, so mounted components never
// show a stale identity.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kidandcat/promanager/internal/models"
)

const (
	TokenKey = "token"
	UserKey  = "userInfo"
)

var (
	ErrEmptyToken = errors.New("session: empty token")
	errEmptyUser  = errors.New("session: empty user record")
)

type Session struct {
	Token string
	User  models.User
}

func (s Session) IsAdmin() bool { return s.User.IsAdmin() }

// Listener receives the session after every change. ok is false when the
// store is empty.
type Listener func(s Session, ok bool)

type Store struct {
	kv  KV
	now func() time.Time

	mu     sync.Mutex
	nextID int
	subs   map[int]Listener
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now, subs: make(map[int]Listener)}
}

// Read returns the persisted session. Missing or unparseable data reads as no
// session.
func (s *Store) Read() (Session, bool) {
	token, ok := s.kv.Get(TokenKey)
	if !ok || token == "" {
		return Session{}, false
	}
	raw, ok := s.kv.Get(UserKey)
	if !ok || raw == "" {
		return Session{}, false
	}
	user, err := decodeUser(raw)
	if err != nil {
		return Session{}, false
	}
	return Session{Token: token, User: user}, true
}

// Token returns the bearer token or "".
func (s *Store) Token() string {
	t, _ := s.kv.Get(TokenKey)
	return t
}

func (s *Store) Write(sess Session) error {
	if sess.Token == "" {
		return ErrEmptyToken
	}
	b, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(TokenKey, sess.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.kv.Set(UserKey, string(b)); err != nil {
		s.kv.Del(TokenKey)
		return fmt.Errorf("persist user: %w", err)
	}
	s.broadcast()
	return nil
}

// UpdateUser replaces the stored user record and keeps the current token.
func (s *Store) UpdateUser(u models.User) error {
	token := s.Token()
	if token == "" {
		return ErrEmptyToken
	}
	return s.Write(Session{Token: token, User: u})
}

func (s *Store) Clear() {
	s.kv.Del(TokenKey)
	s.kv.Del(UserKey)
	s.broadcast()
}

// Subscribe registers fn and returns the func that removes it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Expired reports whether the stored token is a JWT whose exp claim has
// passed. Opaque tokens never expire client side.
func (s *Store) Expired() bool {
	exp, ok := TokenExpiry(s.Token())
	return ok && !s.now().Before(exp)
}

func (s *Store) broadcast() {
	s.mu.Lock()
	subs := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		sess, ok := s.Read()
		fn(sess, ok)
	}
}

// decodeUser accepts the bare user record and the {token, user} wrapper some
// older builds persisted.
func decodeUser(raw string) (models.User, error) {
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return models.User{}, err
	}
	if wrapped.User != nil {
		return *wrapped.User, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, err
	}
	if u == (models.User{}) {
		return models.User{}, errEmptyUser
	}
	return u, nil
}

// TokenExpiry reads the exp claim of a JWT without verifying it. The client
// holds no key; the server remains the authority.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
