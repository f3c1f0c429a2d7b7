package boundary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

type State int

const (
	StateOK State = iota
	StateErrored
)

func (state State) String() string {
	if state == StateErrored {
		return "errored"
	}
	return "ok"
}

// Failure is what the fallback view gets to display.
type Failure struct {
	Err        error
	IncidentID string
	RetryURL   string
	Stylesheet string
	Debug      bool
}

type Fallback func(w io.Writer, failure Failure) error

// Boundary supervises the rendering of a subtree. Once a child fails it
// stays errored, and keeps showing the fallback, until Reset is called.
type Boundary struct {
	logger     *slog.Logger
	fallback   Fallback
	retryURL   string
	debug      bool
	state      State
	err        error
	incidentID string
}

func New(logger *slog.Logger, fallback Fallback, retryURL string, debug bool) *Boundary {
	return &Boundary{
		logger:     logger,
		fallback:   fallback,
		retryURL:   retryURL,
		debug:      debug,
		state:      StateOK,
		err:        nil,
		incidentID: "",
	}
}

func (b *Boundary) State() State {
	return b.state
}

func (b *Boundary) Err() error {
	return b.err
}

// Reset moves back to ok. The cause is not fixed, a child that fails again
// puts the boundary straight back into errored. Boundaries built by
// Middleware live for one request, there the try again request is the
// reset.
func (b *Boundary) Reset() {
	b.state = StateOK
	b.err = nil
	b.incidentID = ""
}

// Evaluate runs child unless the boundary is errored. Panics and returned
// errors both move the boundary into errored.
func (b *Boundary) Evaluate(child func() error) error {
	if b.state == StateErrored {
		return b.err
	}

	err := capture(child)
	if err != nil {
		b.fail(err)
	}

	return err
}

// Render writes the output of child, or the fallback when child fails or
// the boundary is already errored. Partial output of a failed child is
// discarded.
func (b *Boundary) Render(w io.Writer, child func(w io.Writer) error) error {
	var buf bytes.Buffer

	if err := b.Evaluate(func() error { return child(&buf) }); err != nil {
		return b.WriteFallback(w)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (b *Boundary) WriteFallback(w io.Writer) error {
	return b.fallback(w, Failure{
		Err:        b.err,
		IncidentID: b.incidentID,
		RetryURL:   b.retryURL,
		Stylesheet: "",
		Debug:      b.debug,
	})
}

func (b *Boundary) fail(err error) {
	b.state = StateErrored
	b.err = err
	b.incidentID = uuid.NewString()

	// only diagnostic output, it is loud in debug mode
	level := slog.LevelDebug
	if b.debug {
		level = slog.LevelError
	}

	b.logger.Log(
		context.Background(),
		level,
		"error caught by boundary",
		slog.String("incident", b.incidentID),
		logging.ErrAttr(err),
	)
}

func capture(child func() error) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		//nolint:errorlint //sentinel is panicked as is
		if rec == http.ErrAbortHandler {
			panic(rec)
		}

		switch v := rec.(type) {
		case error:
			err = v
		default:
			err = fmt.Errorf("%v", v)
		}
	}()

	return child()
}
