package chat

import (
	"context"
	"hash/fnv"
	"sync"

	domain "careerbot/backend/internal/domain/chat"
	"careerbot/backend/internal/logging"
)

const lockStripes = 64

// Service answers chat turns and carries the miss streak between them.
type Service struct {
	matcher *domain.Matcher
	streaks domain.StreakStore
	global  bool
	log     logging.Logger

	locks [lockStripes]sync.Mutex
}

// NewService constructs a chat service. With global set every caller shares
// one streak; otherwise each session keeps its own.
func NewService(matcher *domain.Matcher, streaks domain.StreakStore, global bool, log logging.Logger) *Service {
	if matcher == nil {
		matcher = domain.NewMatcher(nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Service{
		matcher: matcher,
		streaks: streaks,
		global:  global,
		log:     log,
	}
}

// Scope returns the streak key used for sessionID.
func (s *Service) Scope(sessionID string) string {
	if s.global || sessionID == "" {
		return domain.GlobalScope
	}
	return sessionID
}

// Reply matches message and updates the streak for sessionID. It never fails:
// an unreadable streak counts as zero and a failed write is only logged.
func (s *Service) Reply(ctx context.Context, sessionID, message string) domain.Result {
	scope := s.Scope(sessionID)
	log := s.log.With("scope", scope)
	mu := s.lockFor(scope)
	mu.Lock()
	defer mu.Unlock()

	streak, err := s.streaks.Load(ctx, scope)
	if err != nil {
		log.Warn(ctx, "load chat streak failed", "error", err)
		streak = 0
	}

	res := s.matcher.Match(message, streak)

	if err := s.streaks.Store(ctx, scope, res.Streak); err != nil {
		log.Warn(ctx, "store chat streak failed", "error", err)
	}
	log.Debug(ctx, "chat turn", "intent", res.Intent, "streak", res.Streak)
	return res
}

// Forget drops the streak of a session that is ending. The shared global
// streak is left alone.
func (s *Service) Forget(ctx context.Context, sessionID string) {
	if s.global || sessionID == "" {
		return
	}
	if err := s.streaks.Store(ctx, sessionID, 0); err != nil {
		s.log.With("scope", sessionID).Warn(ctx, "reset chat streak failed", "error", err)
	}
}

func (s *Service) lockFor(scope string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scope))
	return &s.locks[h.Sum32()%lockStripes]
}
