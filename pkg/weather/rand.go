package weather

import (
	"math/rand"
	"sync"
	"time"
)

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func defaultRand() Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
