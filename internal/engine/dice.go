package engine

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync"
)

// Source draws uniform integers. IntRange is inclusive on both ends and
// callers guarantee low <= high.
type Source interface {
	IntRange(low, high int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// IntRange fetches a strongly uniform integer in [low, high].
func (CryptoSource) IntRange(low, high int) int {
	span := high - low + 1
	if span <= 1 {
		return low
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(span)))
	if err != nil {
		return low
	}
	return low + int(n.Int64())
}

// SeededSource draws from a seeded math/rand generator so a whole session
// can be replayed. Safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource creates a deterministic source.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *SeededSource) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return low + s.rng.Intn(high-low+1)
}

// QueueSource returns prepared results in order, then defers to Fallback
// (CryptoSource when nil). Queued values are returned as-is, even outside
// the requested range.
type QueueSource struct {
	mu       sync.Mutex
	queue    []int
	Fallback Source
}

// NewQueueSource prepares a sequence of deterministic results.
func NewQueueSource(results ...int) *QueueSource {
	return &QueueSource{queue: append([]int(nil), results...)}
}

// Push appends more results to the queue.
func (q *QueueSource) Push(results ...int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue = append(q.queue, results...)
}

// Remaining reports how many prepared results have not been consumed.
func (q *QueueSource) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

func (q *QueueSource) IntRange(low, high int) int {
	q.mu.Lock()
	if len(q.queue) > 0 {
		v := q.queue[0]
		q.queue = q.queue[1:]
		q.mu.Unlock()
		return v
	}
	q.mu.Unlock()
	if q.Fallback != nil {
		return q.Fallback.IntRange(low, high)
	}
	return CryptoSource{}.IntRange(low, high)
}
