package console

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"conlog/core"
	"conlog/formatter"
	"conlog/terminal"
)

// Config holds configuration for a print queue
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: ColumnFormatter sharing Widths and
	// tracking the Writer's terminal width)
	Formatter formatter.Formatter
	// Widths is the name-column hint shared by the synchronous and
	// asynchronous paths (default: fresh hint)
	Widths *core.WidthHint
	// BufferSize is the size of the handoff channel (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-severity overflow behavior when the
	// channel is full (default: Block for every severity)
	OverflowPolicy map[core.Severity]OverflowPolicy
	// BlockTimeout is how long a Block enqueue waits for space before
	// falling back to a synchronous write (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Shutdown
	// (default: 5s)
	DrainTimeout time.Duration
	// PollInterval bounds how long a missed wake-up can delay the
	// worker's shutdown check (default: 100ms)
	PollInterval time.Duration
	// CoarseTimestamps stamps requests from the cached coarse clock
	// instead of calling time.Now on every enqueue
	CoarseTimestamps bool
	// Diag receives side-channel diagnostics such as terminal write
	// failures, which must never land on the output stream itself
	// (default: zap.NewNop())
	Diag *zap.Logger
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Widths == nil {
		cfg.Widths = core.NewWidthHint()
	}
	if cfg.Formatter == nil {
		w := cfg.Writer
		cfg.Formatter = formatter.NewColumnFormatter(formatter.Config{
			Widths:        cfg.Widths,
			TerminalWidth: func() int { return terminal.Width(w) },
		})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	if cfg.Diag == nil {
		cfg.Diag = zap.NewNop()
	}
}

// Queue serializes console output from any number of goroutines
// through one dedicated worker. See the package documentation for the
// ordering and failure guarantees.
type Queue struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	widths          *core.WidthHint
	diag            *zap.Logger
	stats           *Stats
	overflowPolicy  map[core.Severity]OverflowPolicy
	blockTimeout    time.Duration
	drainTimeout    time.Duration
	pollInterval    time.Duration
	coarse          bool
	parBufPool      sync.Pool // *bytes.Buffer for sync-path formatting

	mu      sync.Mutex // terminal-write guard; also protects workBuf
	workBuf bytes.Buffer

	queue     chan *core.Request
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	errMu sync.Mutex
	errs  error
}

// NewQueue creates a print queue and starts its worker goroutine. The
// worker starts idle, before anything can be enqueued; Shutdown stops
// it.
func NewQueue(cfg Config) *Queue {
	applyDefaults(&cfg)

	q := &Queue{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		widths:         cfg.Widths,
		diag:           cfg.Diag,
		stats:          NewStats(),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		pollInterval:   cfg.PollInterval,
		coarse:         cfg.CoarseTimestamps,
	}

	// Cache BufferFormatter for the reused-buffer write paths
	q.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	q.workBuf.Grow(256)
	q.parBufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}

	if q.coarse {
		core.StartCoarseClock()
	}

	q.queue = make(chan *core.Request, cfg.BufferSize)
	q.closed = make(chan struct{})
	q.wg.Add(1)
	go q.work()

	return q
}

// newRequest builds a pooled request stamped with the current time.
func (q *Queue) newRequest(message, name string, sev core.Severity) *core.Request {
	req := core.GetRequest()
	if q.coarse {
		req.Time = core.CoarseNow()
	}
	req.Severity = sev
	req.Message = message
	req.Name = name
	return req
}

// Enqueue appends a print request and returns without waiting for
// terminal I/O. Requests are delivered in the order their channel sends
// complete: the order is linearizable at the enqueue point, and the
// wall-clock call order of genuinely concurrent callers is unspecified.
//
// When the channel is full the per-severity OverflowPolicy applies;
// with the default Block policy the request is never dropped, at worst
// it is written synchronously after BlockTimeout. After Shutdown has
// been initiated the request is silently dropped and counted in Stats;
// PrintSync remains available as the caller's recourse.
func (q *Queue) Enqueue(message, name string, sev core.Severity) {
	q.widths.Observe(name)
	req := q.newRequest(message, name, sev)

	select {
	case <-q.closed:
		q.stats.IncrementDropped(sev)
		core.PutRequest(req)
		return
	default:
	}

	policy, ok := q.overflowPolicy[sev]
	if !ok {
		policy = Block // never drop unconfigured severities
	}

	switch policy {
	case DropNewest:
		select {
		case q.queue <- req:
		default:
			q.stats.IncrementDropped(sev)
			core.PutRequest(req)
		}

	case DropOldest:
		select {
		case q.queue <- req:
		default:
			// Queue full - evict the oldest to make room
			select {
			case old := <-q.queue:
				q.stats.IncrementDropped(old.Severity)
				core.PutRequest(old)
			default:
			}
			select {
			case q.queue <- req:
			default:
				// Still full, drop this one
				q.stats.IncrementDropped(sev)
				core.PutRequest(req)
			}
		}

	case Block:
		fallthrough
	default:
		select {
		case q.queue <- req:
		default:
			timer := time.NewTimer(q.blockTimeout)
			select {
			case q.queue <- req:
				timer.Stop()
			case <-timer.C:
				// Queue stayed full; deliver on the caller's
				// goroutine instead of dropping.
				q.stats.IncrementBlocked()
				q.record(q.writeParallel(req))
				core.PutRequest(req)
			case <-q.closed:
				timer.Stop()
				q.stats.IncrementDropped(sev)
				core.PutRequest(req)
			}
		}
	}
}

// PrintSync formats and writes on the calling goroutine, under the same
// terminal-write guard as the worker, so synchronous and asynchronous
// output never interleave. It keeps working after Shutdown.
func (q *Queue) PrintSync(message, name string, sev core.Severity) error {
	q.widths.Observe(name)
	req := q.newRequest(message, name, sev)

	err := q.writeParallel(req)
	q.record(err)
	core.PutRequest(req)
	return err
}

// SetMinColumnWidth raises the name-column floor so output lines up
// with names that have not been observed yet. The column never shrinks.
func (q *Queue) SetMinColumnWidth(width int) {
	q.widths.Raise(width)
}

// Stats returns a snapshot of the current statistics
func (q *Queue) Stats() Snapshot {
	return q.stats.GetSnapshot()
}

// Shutdown stops accepting asynchronous work, waits for the worker to
// drain what is currently queued and terminate, and returns the write
// errors accumulated since construction. It is idempotent and safe to
// call from any goroutine.
func (q *Queue) Shutdown() error {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
	q.wg.Wait()

	q.errMu.Lock()
	defer q.errMu.Unlock()
	return q.errs
}

// work is the single consumer of the queue. It idles on the channel,
// batch-drains bursts, and finishes the remaining items once shutdown
// is signaled. The poll ticker re-checks shutdown so a missed wake-up
// delays termination by at most one interval.
func (q *Queue) work() {
	defer q.wg.Done()

	poll := time.NewTicker(q.pollInterval)
	defer poll.Stop()

	for {
		select {
		case req := <-q.queue:
			q.writeOwned(req)
			// Batch drain: process additional queued requests without blocking
		batchDrain:
			for {
				select {
				case req := <-q.queue:
					q.writeOwned(req)
				default:
					break batchDrain
				}
			}
		case <-poll.C:
			select {
			case <-q.closed:
				q.drain()
				return
			default:
			}
		case <-q.closed:
			q.drain()
			return
		}
	}
}

// drain writes everything still queued, bounded by drainTimeout.
func (q *Queue) drain() {
	deadline := time.After(q.drainTimeout)
	for {
		select {
		case req := <-q.queue:
			q.writeOwned(req)
		case <-deadline:
			return
		default:
			// Queue empty
			return
		}
	}
}

// writeOwned formats into the queue-owned buffer under the terminal
// guard. Only the worker calls it, so the lock is uncontended except
// against synchronous writers.
func (q *Queue) writeOwned(req *core.Request) {
	var err error
	if q.bufferFormatter != nil {
		q.mu.Lock()
		q.workBuf.Reset()
		q.bufferFormatter.FormatRequest(req, &q.workBuf)
		_, err = q.writer.Write(q.workBuf.Bytes())
		q.mu.Unlock()
	} else {
		err = q.writeParallel(req)
	}
	q.record(err)
	core.PutRequest(req)
}

// writeParallel formats into a pooled buffer outside the terminal
// guard, then holds the guard only for the write itself. Used by the
// synchronous paths, which may run concurrently with the worker.
func (q *Queue) writeParallel(req *core.Request) error {
	if q.bufferFormatter != nil {
		buf := q.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		q.bufferFormatter.FormatRequest(req, buf)

		q.mu.Lock()
		_, err := q.writer.Write(buf.Bytes())
		q.mu.Unlock()

		q.parBufPool.Put(buf)
		return err
	}

	data, err := q.formatter.Format(req)
	if err != nil {
		return err
	}

	q.mu.Lock()
	_, err = q.writer.Write(data)
	q.mu.Unlock()
	return err
}

// record counts a completed write and routes failures to the side
// channel. Write failures are not retried and never stop the worker;
// they surface again as the combined error from Shutdown.
func (q *Queue) record(err error) {
	if err == nil {
		q.stats.IncrementProcessed()
		return
	}

	q.diag.Warn("console write failed", zap.Error(err))

	q.errMu.Lock()
	q.errs = multierr.Append(q.errs, err)
	q.errMu.Unlock()
}
