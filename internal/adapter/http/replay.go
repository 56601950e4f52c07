package httpadapter

import (
	"crypto/ed25519"
	"sync"
	"time"
)

// replayGuard remembers accepted signatures until their timestamp can no
// longer pass the skew check, so each signed request is executed once.
type replayGuard struct {
	mu        sync.Mutex
	ttl       time.Duration
	seen      map[[ed25519.SignatureSize]byte]time.Time
	lastSweep time.Time
}

func newReplayGuard(ttl time.Duration) *replayGuard {
	return &replayGuard{
		ttl:  ttl,
		seen: make(map[[ed25519.SignatureSize]byte]time.Time),
	}
}

// claim records sig as used at now. It reports false if sig was already
// claimed and has not expired.
func (g *replayGuard) claim(sig []byte, now time.Time) bool {
	var key [ed25519.SignatureSize]byte
	copy(key[:], sig)

	g.mu.Lock()
	defer g.mu.Unlock()

	if now.Sub(g.lastSweep) >= g.ttl {
		for k, expiresAt := range g.seen {
			if !now.Before(expiresAt) {
				delete(g.seen, k)
			}
		}
		g.lastSweep = now
	}

	if expiresAt, ok := g.seen[key]; ok && now.Before(expiresAt) {
		return false
	}
	g.seen[key] = now.Add(g.ttl)
	return true
}

func (g *replayGuard) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
