package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/themizzi/sauceshop/internal/store"
)

// DefaultSessionLimit caps the sessions kept open at once. Opening one more
// closes the oldest.
const DefaultSessionLimit = 1024

// session serializes calls against one store; stores are single-caller
type session struct {
	mu    sync.Mutex
	store *store.Store
}

// Sessions maps bearer tokens to the store opened by the login that minted them
type Sessions struct {
	mu       sync.RWMutex
	byToken  map[string]*session
	opened   []string
	limit    int
	newStore func() *store.Store
}

// NewSessions creates an empty registry. Stores are created with opts and
// share one order ID sequence.
func NewSessions(opts ...store.Option) *Sessions {
	orderIDs := &store.OrderSequence{}
	storeOpts := append([]store.Option{store.WithOrderSequence(orderIDs)}, opts...)

	return &Sessions{
		byToken: make(map[string]*session),
		limit:   DefaultSessionLimit,
		newStore: func() *store.Store {
			return store.New(storeOpts...)
		},
	}
}

// NewStore returns a fresh anonymous store
func (s *Sessions) NewStore() *store.Store {
	return s.newStore()
}

// Open registers st under its token, closing the oldest session when the
// registry is full
func (s *Sessions) Open(st *store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := st.Token()
	if _, exists := s.byToken[token]; !exists {
		s.opened = append(s.opened, token)
	}
	s.byToken[token] = &session{store: st}

	for len(s.opened) > s.limit {
		delete(s.byToken, s.opened[0])
		s.opened = s.opened[1:]
	}
}

// Len returns the number of open sessions
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}

// Do runs fn against the store selected by the request's bearer token.
// Requests without a known token get a throwaway anonymous store so that the
// store's own gate produces the rejection.
func (s *Sessions) Do(r *http.Request, fn func(*store.Store) store.Response) store.Response {
	token := bearerToken(r)

	s.mu.RLock()
	sess, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok {
		return fn(s.newStore())
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.store)
}

// DoWithBody is Do for requests carrying a JSON body. The body is decoded
// into v only once the token has selected an open session, so anonymous
// callers are rejected as unauthorized whatever they send.
func (s *Sessions) DoWithBody(r *http.Request, v any, fn func(*store.Store) store.Response) store.Response {
	return s.Do(r, func(st *store.Store) store.Response {
		if st.State() != store.Authenticated {
			return fn(st)
		}
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return invalidBody()
		}
		return fn(st)
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
