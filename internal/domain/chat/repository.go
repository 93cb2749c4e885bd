package chat

import "context"

// GlobalScope is the streak key shared by every caller when streaks are not
// scoped per session.
const GlobalScope = "global"

// StreakStore persists the consecutive-miss counter per scope key. Load
// reports an unknown key as zero.
type StreakStore interface {
	Load(ctx context.Context, scope string) (int, error)
	Store(ctx context.Context, scope string, streak int) error
}
