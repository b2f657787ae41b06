package bruteforce

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/boz/go-throttle"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout is how long a search may run before it is reported as timed out
	DefaultTimeout = time.Minute
	// DefaultBatchSize is how many candidate keys a worker takes off the queue at a time
	DefaultBatchSize = 16
	// DefaultProgressInterval is the minimum gap between two progress callbacks
	DefaultProgressInterval = 100 * time.Millisecond
)

// Progress is a point-in-time view of a running search
type Progress struct {
	Checked int
	Total   int
}

// Result is the outcome of an all-matches search. Keys is sorted for display
// but should be treated as a set.
type Result struct {
	Keys     []sdes.Bits
	Checked  int
	Elapsed  time.Duration
	TimedOut bool
}

// FirstResult is the outcome of a first-match search. Key is some key that
// maps the plaintext to the ciphertext, not necessarily the one that was used.
type FirstResult struct {
	Key      sdes.Bits
	Found    bool
	Checked  int
	Elapsed  time.Duration
	TimedOut bool
}

// Searcher runs exhaustive key searches over the whole keyspace on a fixed
// pool of workers
type Searcher struct {
	Log              *logrus.Entry
	workers          int
	timeout          time.Duration
	batchSize        int
	progressInterval time.Duration
	onProgress       func(Progress)
}

// Option configures a Searcher
type Option func(*Searcher)

// WithWorkers sets the size of the worker pool. Values below one fall back to
// the number of CPUs.
func WithWorkers(workers int) Option {
	return func(s *Searcher) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithTimeout bounds how long a search may run
func WithTimeout(timeout time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = timeout
	}
}

// WithBatchSize sets how many candidates make up one unit of work
func WithBatchSize(batchSize int) Option {
	return func(s *Searcher) {
		if batchSize > 0 {
			s.batchSize = batchSize
		}
	}
}

// WithProgress registers a callback which is called at most once per interval
// while the search runs, and once more when it ends. The final call may
// overlap with a throttled one, so f must be safe for concurrent use.
func WithProgress(interval time.Duration, f func(Progress)) Option {
	return func(s *Searcher) {
		if interval > 0 {
			s.progressInterval = interval
		}
		s.onProgress = f
	}
}

// NewSearcher returns a Searcher sized to the available hardware parallelism
func NewSearcher(log *logrus.Entry, options ...Option) *Searcher {
	s := &Searcher{
		Log:              log,
		workers:          runtime.NumCPU(),
		timeout:          DefaultTimeout,
		batchSize:        DefaultBatchSize,
		progressInterval: DefaultProgressInterval,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Workers returns the size of the worker pool
func (s *Searcher) Workers() int {
	return s.workers
}

// Timeout returns the search deadline
func (s *Searcher) Timeout() time.Duration {
	return s.timeout
}

// FindAll tests every key and returns all of those that encrypt plaintext to
// ciphertext. If the search is cut short by the timeout or by ctx the result
// is marked TimedOut and the returned error has the SearchTimedOut code; an
// empty key set with a nil error means the whole keyspace was exhausted.
func (s *Searcher) FindAll(ctx context.Context, plaintext, ciphertext sdes.Bits) (Result, error) {
	if err := validatePair(plaintext, ciphertext); err != nil {
		return Result{}, err
	}

	start := time.Now()
	acc := &accumulator{}
	s.run(ctx, plaintext, ciphertext, acc, nil)
	keys, checked := acc.snapshot()

	result := Result{
		Keys:     keys,
		Checked:  checked,
		Elapsed:  time.Since(start),
		TimedOut: checked < sdes.KeySpace,
	}

	s.Log.WithFields(logrus.Fields{
		"plaintext":  plaintext.String(),
		"ciphertext": ciphertext.String(),
		"matches":    len(result.Keys),
		"checked":    result.Checked,
		"elapsed":    result.Elapsed.String(),
		"timedOut":   result.TimedOut,
	}).Info("all-matches search finished")

	if result.TimedOut {
		return result, s.timedOutError(ctx, checked)
	}
	return result, nil
}

// FindFirst returns as soon as any key maps plaintext to ciphertext. The
// remaining work is abandoned once a key is found.
func (s *Searcher) FindFirst(ctx context.Context, plaintext, ciphertext sdes.Bits) (FirstResult, error) {
	if err := validatePair(plaintext, ciphertext); err != nil {
		return FirstResult{}, err
	}

	start := time.Now()
	acc := &accumulator{}
	slot := &firstSlot{}
	s.run(ctx, plaintext, ciphertext, acc, slot)
	_, checked := acc.snapshot()
	key, found := slot.get()

	result := FirstResult{
		Key:      key,
		Found:    found,
		Checked:  checked,
		Elapsed:  time.Since(start),
		TimedOut: !found && checked < sdes.KeySpace,
	}

	s.Log.WithFields(logrus.Fields{
		"plaintext":  plaintext.String(),
		"ciphertext": ciphertext.String(),
		"found":      result.Found,
		"elapsed":    result.Elapsed.String(),
		"timedOut":   result.TimedOut,
	}).Info("first-match search finished")

	if result.TimedOut {
		return result, s.timedOutError(ctx, checked)
	}
	return result, nil
}

// run feeds every candidate key through the worker pool. It returns when all
// workers have exited, or when the deadline passes, whichever comes first; it
// never waits on workers after the deadline. When slot is non-nil the first
// match is recorded there and the remaining work is cancelled.
func (s *Searcher) run(ctx context.Context, plaintext, ciphertext sdes.Bits, acc *accumulator, slot *firstSlot) {
	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, s.timeout)
	defer cancelTimeout()
	runCtx, stop := context.WithCancel(timeoutCtx)
	defer stop()

	var live atomic.Int64
	var progress throttle.ThrottleDriver
	if s.onProgress != nil {
		progress = throttle.ThrottleFunc(s.progressInterval, true, func() {
			s.onProgress(Progress{Checked: int(live.Load()), Total: sdes.KeySpace})
		})
	}

	batches := make(chan []uint)
	go func() {
		defer close(batches)
		for _, batch := range lo.Chunk(candidates(), s.batchSize) {
			if runCtx.Err() != nil {
				return
			}
			select {
			case batches <- batch:
			case <-runCtx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var found []sdes.Bits
			checked := 0
			defer func() { acc.merge(found, checked) }()

			for batch := range batches {
				for _, candidate := range batch {
					if runCtx.Err() != nil {
						return
					}
					key := sdes.BitsFromUint(candidate, sdes.KeySize)
					if matches(key, plaintext, ciphertext) {
						found = append(found, key)
						if slot != nil && slot.offer(key) {
							stop()
						}
					}
					checked++
				}
				live.Add(int64(len(batch)))
				if progress != nil {
					progress.Trigger()
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-runCtx.Done():
		// a cancelled first-match run still lets the workers merge, since
		// they stop within one candidate
		if slot != nil && timeoutCtx.Err() == nil {
			<-done
		}
	}

	if progress != nil {
		progress.Stop()
		s.onProgress(Progress{Checked: int(live.Load()), Total: sdes.KeySpace})
	}
}

func (s *Searcher) timedOutError(ctx context.Context, checked int) error {
	reason := fmt.Sprintf("timeout of %s elapsed", s.timeout)
	if ctx.Err() != nil {
		reason = ctx.Err().Error()
	}
	return sdes.NewComplexError(
		sdes.SearchTimedOut,
		"search stopped after checking %d of %d keys: %s",
		checked, sdes.KeySpace, reason,
	)
}

// matches derives a fresh subkey pair for key and checks one encryption
func matches(key, plaintext, ciphertext sdes.Bits) bool {
	keys, err := sdes.DeriveSubkeys(key)
	if err != nil {
		return false
	}
	encrypted, err := sdes.EncryptBlock(plaintext, keys)
	if err != nil {
		return false
	}
	return encrypted.Equal(ciphertext)
}

func candidates() []uint {
	return lo.Times(sdes.KeySpace, func(i int) uint {
		return uint(i)
	})
}

func validatePair(plaintext, ciphertext sdes.Bits) error {
	if len(plaintext) != sdes.BlockSize {
		return sdes.NewComplexError(sdes.InvalidBlockLength, "plaintext must be %d bits, got %d", sdes.BlockSize, len(plaintext))
	}
	if len(ciphertext) != sdes.BlockSize {
		return sdes.NewComplexError(sdes.InvalidBlockLength, "ciphertext must be %d bits, got %d", sdes.BlockSize, len(ciphertext))
	}
	return nil
}
