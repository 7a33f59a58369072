package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrLoadFailed marks any asset that could not be fetched.
var ErrLoadFailed = errors.New("asset load failed")

// ProgressFunc receives percent complete (0-100) for one asset path.
type ProgressFunc func(path string, percent float64)

// Result is what a finished fetch hands back to the main thread.
type Result struct {
	Path string
	Data []byte
}

// Future is the pending result of one background fetch.
type Future struct {
	path string
	done chan struct{}
	res  Result
	err  error
}

func newFuture(path string) *Future {
	return &Future{path: path, done: make(chan struct{})}
}

func (f *Future) resolve(res Result, err error) {
	f.res, f.err = res, err
	close(f.done)
}

func (f *Future) Path() string { return f.path }

// Done is closed once the fetch has finished, successfully or not.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the fetch finishes or ctx is done.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Loader fetches asset files off the main thread. GPU upload still has to
// happen on the thread that owns the window, so the loader only reads
// bytes and reports progress.
type Loader struct {
	OnProgress ProgressFunc
	Open       func(path string) (io.ReadCloser, int64, error)
	ChunkSize  int
}

func NewLoader() *Loader {
	return &Loader{
		Open:      openFile,
		ChunkSize: 32 * 1024,
	}
}

func openFile(path string) (io.ReadCloser, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// Fetch starts reading path in the background.
func (l *Loader) Fetch(ctx context.Context, path string) *Future {
	fut := newFuture(path)
	go func() {
		data, err := l.read(ctx, path)
		if err != nil {
			fut.resolve(Result{Path: path}, fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err))
			return
		}
		fut.resolve(Result{Path: path, Data: data}, nil)
	}()
	return fut
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	rc, total, err := l.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	chunk := l.ChunkSize
	if chunk <= 0 {
		chunk = 32 * 1024
	}

	var data []byte
	if total > 0 {
		data = make([]byte, 0, total)
	}
	buf := make([]byte, chunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := rc.Read(buf)
		data = append(data, buf[:n]...)
		if n > 0 && total > 0 {
			l.progress(path, float64(len(data))/float64(total)*100)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if total <= 0 {
		l.progress(path, 100)
	}
	return data, nil
}

func (l *Loader) progress(path string, percent float64) {
	if l.OnProgress != nil {
		l.OnProgress(path, percent)
	}
}

// Barrier joins a set of futures. It completes only when every future
// has resolved; the first failure becomes the barrier's error.
type Barrier struct {
	futures []*Future
	done    chan struct{}
	mu      sync.Mutex
	results map[string]Result
	err     error
}

// Join waits on every future in the background.
func Join(ctx context.Context, futures ...*Future) *Barrier {
	b := &Barrier{
		futures: futures,
		done:    make(chan struct{}),
		results: make(map[string]Result, len(futures)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range futures {
		g.Go(func() error {
			res, err := f.Wait(gctx)
			if err != nil {
				return err
			}
			b.mu.Lock()
			b.results[f.Path()] = res
			b.mu.Unlock()
			return nil
		})
	}

	go func() {
		err := g.Wait()
		b.mu.Lock()
		b.err = err
		b.mu.Unlock()
		close(b.done)
	}()
	return b
}

// Pending counts futures that have not resolved yet.
func (b *Barrier) Pending() int {
	n := 0
	for _, f := range b.futures {
		select {
		case <-f.Done():
		default:
			n++
		}
	}
	return n
}

// Done is closed when the barrier has completed.
func (b *Barrier) Done() <-chan struct{} { return b.done }

// Ready reports, without blocking, whether the barrier completed and
// with which error.
func (b *Barrier) Ready() (bool, error) {
	select {
	case <-b.done:
		b.mu.Lock()
		defer b.mu.Unlock()
		return true, b.err
	default:
		return false, nil
	}
}

// Wait blocks until the barrier completes or ctx is done.
func (b *Barrier) Wait(ctx context.Context) (map[string]Result, error) {
	select {
	case <-b.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	out := make(map[string]Result, len(b.results))
	for k, v := range b.results {
		out[k] = v
	}
	return out, nil
}

// Progress tracks percent complete across several assets so one number
// can be shown while they load.
type Progress struct {
	mu      sync.Mutex
	percent map[string]float64
	logged  map[string]int
}

func NewProgress(paths ...string) *Progress {
	p := &Progress{
		percent: make(map[string]float64, len(paths)),
		logged:  make(map[string]int, len(paths)),
	}
	for _, path := range paths {
		p.percent[path] = 0
		p.logged[path] = -1
	}
	return p
}

// Report is a ProgressFunc. It logs once per 10% step per asset.
func (p *Progress) Report(path string, percent float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.percent[path] = percent
	if step := int(percent) / 10; step != p.logged[path] {
		p.logged[path] = step
		log.Printf("Assets: %s %d%% downloaded", path, int(math.Round(percent)))
	}
}

// Overall is the mean percent across every tracked asset.
func (p *Progress) Overall() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.percent) == 0 {
		return 100
	}
	var sum float64
	for _, v := range p.percent {
		sum += v
	}
	return sum / float64(len(p.percent))
}
