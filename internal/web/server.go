// Package web serves the notes as server-rendered HTML for a local browser.
package web

import (
	"embed"
	"html/template"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTML front-end. It owns one note store and one form
// controller; mu makes every request a single interaction turn over them.
type Server struct {
	*fiber.App

	mu     sync.Mutex
	store  *notes.Store
	form   *modal.Controller
	page   *template.Template
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*serverOptions)

type serverOptions struct {
	accessLog io.Writer
	logger    *slog.Logger
}

// WithAccessLog writes one line per request to w. nil disables the access log.
func WithAccessLog(w io.Writer) Option {
	return func(o *serverOptions) { o.accessLog = w }
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *serverOptions) { o.logger = l }
}

// New creates a Server with its routes registered.
func New(store *notes.Store, form *modal.Controller, opts ...Option) *Server {
	o := serverOptions{accessLog: os.Stderr, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		App: fiber.New(fiber.Config{
			ServerHeader:          "quicknotes",
			AppName:               "quicknotes",
			DisableStartupMessage: true,
			// Form values and params outlive the request in the note store.
			Immutable: true,
		}),
		store:  store,
		form:   form,
		page:   parseTemplates(),
		logger: o.logger,
	}

	s.App.Use(recover.New())
	if o.accessLog != nil {
		s.App.Use(logger.New(logger.Config{Output: o.accessLog}))
	}
	s.RegisterRoutes()
	return s
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"isAdd": func(c render.Card) bool { return c.Kind == render.CardAdd },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// Reload re-reads the collection from storage between requests. The storage
// watcher calls it when another process rewrites the notes file.
func (s *Server) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Reload()
	s.logger.Debug("web: reloaded notes", "count", s.store.Len())
}
