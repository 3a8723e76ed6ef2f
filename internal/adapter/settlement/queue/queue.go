package queue

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"agoraverse/internal/app/ports"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 600 * time.Millisecond
	defaultMaxDelay    = 8 * time.Second
)

type job struct {
	fromActor string
	toAddress string
	amount    float64
	reason    string
	attempt   int
}

// Queue feeds transfer jobs to a SettlementClient on a background worker.
// Enqueue never blocks the caller; failed transfers retry with doubling,
// jittered backoff until the attempt budget runs out.
type Queue struct {
	client      ports.SettlementClient
	log         *slog.Logger
	maxAttempts int

	mu     sync.Mutex
	jobs   chan job
	closed bool
	wg     sync.WaitGroup
}

func New(client ports.SettlementClient, log *slog.Logger) *Queue {
	if log == nil {
		log = slog.Default()
	}
	q := &Queue{
		client:      client,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		jobs:        make(chan job, 1024),
	}
	q.wg.Add(1)
	go q.worker()
	return q
}

func (q *Queue) Enqueue(fromActor, toAddress string, amount float64, reason string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.jobs <- job{fromActor: fromActor, toAddress: toAddress, amount: amount, reason: reason}:
	default:
		// Full buffer means the settlement backend has been down for a
		// while; dropping with a log keeps the tick loop alive.
		q.log.Error("settlement queue full, dropping transfer",
			"from", fromActor, "to", toAddress, "amount", amount, "reason", reason)
	}
}

// Close drains outstanding jobs and stops the worker.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		q.process(j)
	}
}

func (q *Queue) process(j job) {
	delay := defaultBaseDelay
	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := q.client.Transfer(ctx, j.fromActor, j.toAddress, j.amount, j.reason)
		cancel()
		if err == nil {
			return
		}
		if attempt >= q.maxAttempts {
			q.log.Error("settlement transfer abandoned",
				"from", j.fromActor, "to", j.toAddress, "amount", j.amount,
				"reason", j.reason, "attempts", attempt, "err", err)
			return
		}
		q.log.Warn("settlement transfer retrying",
			"from", j.fromActor, "to", j.toAddress, "attempt", attempt, "err", err)
		time.Sleep(jitter(delay))
		delay *= 2
		if delay > defaultMaxDelay {
			delay = defaultMaxDelay
		}
	}
}

// jitter spreads retries across [d/2, d) so a burst of failures does not
// hammer the backend in lockstep.
func jitter(d time.Duration) time.Duration {
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)))
}
