package web

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/render"
)

// RegisterRoutes wires the HTML pages, form posts and the JSON endpoint.
func (s *Server) RegisterRoutes() {
	s.App.Use(s.serialize)

	s.App.Get("/", s.index)
	s.App.Get("/notes/new", s.newNote)
	s.App.Get("/notes/:id/edit", s.editNote)
	s.App.Post("/notes", s.saveNote)
	s.App.Post("/notes/:id/delete", s.deleteNote)
	s.App.Post("/modal/cancel", s.cancelModal)
	s.App.Get("/api/notes", s.listNotes)
}

// serialize holds the server lock for the whole request.
func (s *Server) serialize(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Next()
}

type pageData struct {
	Query   string
	Count   int
	Matches int
	Cards   []render.Card
	Modal   *modalData
}

type modalData struct {
	Heading string
	ID      string
	Title   string
	Body    string
	Message string
}

func (s *Server) index(c *fiber.Ctx) error {
	if s.form.IsOpen() {
		s.form.Cancel()
	}
	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) newNote(c *fiber.Ctx) error {
	s.form.OpenAdd()
	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) editNote(c *fiber.Ctx) error {
	if err := s.form.OpenEdit(c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "note not found")
	}
	return s.renderPage(c, fiber.StatusOK)
}

// saveNote handles the form post. The form carries the note id when editing,
// so a stale controller state cannot redirect the save to another note.
func (s *Server) saveNote(c *fiber.Ctx) error {
	id := c.FormValue("id")
	switch {
	case id != "":
		if s.form.State() != modal.Editing || s.form.EditingID() != id {
			if err := s.form.OpenEdit(id); err != nil {
				return fiber.NewError(fiber.StatusNotFound, "note not found")
			}
		}
	case s.form.State() != modal.Adding:
		s.form.OpenAdd()
	}

	s.form.SetTitle(c.FormValue("title"))
	s.form.SetBody(c.FormValue("body"))

	note, err := s.form.Save()
	if errors.Is(err, notes.ErrEmptyNote) {
		return s.renderPage(c, fiber.StatusUnprocessableEntity)
	}
	if err != nil {
		return err
	}
	if saveErr := s.store.SaveErr(); saveErr != nil {
		s.logger.Error("web: note kept in memory only", "id", note.ID, "error", saveErr)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if !s.store.Delete(id) {
		s.logger.Debug("web: delete of unknown note", "id", id)
	}
	if s.form.EditingID() == id {
		s.form.Cancel()
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// cancelModal closes the form. A post from the backdrop is an outside
// gesture; the Cancel button is an explicit cancel.
func (s *Server) cancelModal(c *fiber.Ctx) error {
	if c.FormValue("outside") != "" {
		s.form.Dismiss(false)
	} else {
		s.form.Cancel()
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) listNotes(c *fiber.Ctx) error {
	filtered := notes.Filter(s.store.List(), c.Query("q"))
	if filtered == nil {
		filtered = []notes.Note{}
	}
	return c.JSON(filtered)
}

func (s *Server) renderPage(c *fiber.Ctx, status int) error {
	query := c.Query("q")
	tree := render.Render(notes.Filter(s.store.List(), query))

	data := pageData{
		Query:   query,
		Count:   s.store.Len(),
		Matches: len(tree.Notes()),
		Cards:   tree.Cards,
	}
	if s.form.IsOpen() {
		data.Modal = &modalData{
			Heading: s.form.Heading(),
			ID:      s.form.EditingID(),
			Title:   s.form.Title(),
			Body:    s.form.Body(),
			Message: s.form.Message(),
		}
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "page", data); err != nil {
		s.logger.Error("web: render page", "error", err)
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
