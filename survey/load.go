package survey

import (
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
)

// subCapacity is the buffer size of a subscription.
const subCapacity = 16

// endOfStream is broadcast after the last response.
type endOfStream struct{}

// Loader reads a form export in the background and broadcasts the responses
// to all subscribers. Subscriptions have to be made before calling Start.
type Loader struct {
	Format Format
	path   string
	file   *os.File
	cast   *caster.Caster // broadcaster for async loading
	done   chan struct{}
	err    error // remember read error
}

// Open opens a form export for loading. Opening is always done synchronously.
func Open(path string, format Format) (*Loader, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	return &Loader{
		Format: format,
		path:   path,
		file:   file,
		cast:   caster.New(nil),
		done:   make(chan struct{}),
	}, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("survey: %s is not a regular file", path)
	}
	return os.Open(path) // just open for read access
}

// Subscribe returns a channel receiving every response in file order. The
// channel is closed after the last response, or when ctx is done. A
// cancelled subscription keeps consuming broadcasts until loading ends, so
// the loader is never blocked by it.
func (l *Loader) Subscribe(ctx context.Context) <-chan Response {
	out := make(chan Response)
	sub, ok := l.cast.Sub(ctx, subCapacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			switch m := msg.(type) {
			case Response:
				select {
				case out <- m:
				case <-ctx.Done():
					go drain(sub)
					return
				}
			case endOfStream:
				return
			}
		}
	}()
	return out
}

// drain consumes the rest of a broadcast.
func drain(sub <-chan interface{}) {
	for msg := range sub {
		if _, ok := msg.(endOfStream); ok {
			return
		}
	}
}

// Start starts reading the file on a separate goroutine.
func (l *Loader) Start() {
	go func() {
		defer close(l.done)
		defer l.cast.Close()
		defer l.file.Close()
		n := 0
		l.err = readResponses(l.file, l.Format, func(r Response) {
			l.cast.Pub(r)
			n++
		})
		l.cast.Pub(endOfStream{})
		tracer().Debugf("survey: broadcast %d responses from %s", n, l.path)
	}()
}

// Wait waits for the loader to finish reading and returns the read error,
// if any.
func (l *Loader) Wait() error {
	<-l.done
	if l.err != nil {
		return fmt.Errorf("survey: loading %s: %w", l.path, l.err)
	}
	return nil
}

// Stream opens a form export and starts loading it. The responses are
// delivered on the returned channel; wait reports the read error after the
// channel is closed.
func Stream(ctx context.Context, path string, format Format) (<-chan Response, func() error, error) {
	l, err := Open(path, format)
	if err != nil {
		return nil, nil, err
	}
	ch := l.Subscribe(ctx)
	l.Start()
	return ch, l.Wait, nil
}

// Load reads all responses from a form export.
func Load(path string, format Format) ([]Response, error) {
	ch, wait, err := Stream(context.Background(), path, format)
	if err != nil {
		return nil, err
	}
	var responses []Response
	for r := range ch {
		responses = append(responses, r)
	}
	return responses, wait()
}
