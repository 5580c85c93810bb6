package selection

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const DefaultSessionLimit = 10000

type session struct {
	mu    sync.Mutex
	state *State
}

// Store keeps one State per session id. The least recently used sessions
// are dropped once the limit is reached.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache
	options  OptionSource
}

func NewStore(limit int, options OptionSource) (*Store, error) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	cache, err := lru.New(limit)
	if err != nil {
		return nil, err
	}
	return &Store{
		sessions: cache,
		options:  options,
	}, nil
}

func (s *Store) get(sessionId string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.sessions.Get(sessionId); ok {
		return v.(*session)
	}
	sess := &session{state: NewState(s.options)}
	s.sessions.Add(sessionId, sess)
	return sess
}

// With runs fn with exclusive access to the session's state, creating it
// when missing.
func (s *Store) With(sessionId string, fn func(state *State) error) error {
	sess := s.get(sessionId)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.state)
}

func (s *Store) Len() int {
	return s.sessions.Len()
}
