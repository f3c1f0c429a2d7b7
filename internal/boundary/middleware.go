package boundary

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

//go:embed templates/*.html
var htmlTemplates embed.FS

//nolint:gochecknoglobals //parsed once
var tpl = template.Must(template.ParseFS(htmlTemplates, "templates/*.html"))

// Panel renders the generic failure panel.
func Panel(w io.Writer, failure Failure) error {
	return tpl.ExecuteTemplate(w, "boundary.html", failure)
}

// Middleware puts a fresh boundary around every request. A failing handler
// gets its output replaced by the failure panel, styled with stylesheet
// when it is set. The try again link points at the same URL, so following
// it resets the boundary and renders the subtree once more.
func Middleware(
	logger *slog.Logger,
	stylesheet string,
	debug bool,
) func(http.Handler) http.Handler {
	panel := func(w io.Writer, failure Failure) error {
		failure.Stylesheet = stylesheet
		return Panel(w, failure)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := New(logger, panel, r.URL.RequestURI(), debug)

			rec := newRecorder()
			var page bytes.Buffer

			err := b.Render(&page, func(body io.Writer) error {
				rec.body = body
				next.ServeHTTP(rec, r)
				return nil
			})
			if err != nil {
				logger.Error("failed to render boundary fallback", logging.ErrAttr(err))
			}

			if b.State() == StateErrored {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Header().Set("Cache-Control", "no-store")
				w.WriteHeader(http.StatusInternalServerError)
			} else {
				rec.writeHeader(w)
			}

			_, _ = page.WriteTo(w)
		})
	}
}

type recorder struct {
	header http.Header
	status int
	body   io.Writer
}

func newRecorder() *recorder {
	return &recorder{
		header: http.Header{},
		status: 0,
		body:   io.Discard,
	}
}

func (rec *recorder) Header() http.Header {
	return rec.header
}

func (rec *recorder) WriteHeader(status int) {
	if rec.status == 0 {
		rec.status = status
	}
}

func (rec *recorder) Write(data []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.body.Write(data)
}

func (rec *recorder) writeHeader(w http.ResponseWriter) {
	for key, values := range rec.header {
		w.Header()[key] = values
	}

	if rec.status == 0 {
		rec.status = http.StatusOK
	}

	w.WriteHeader(rec.status)
}
