package authors

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/models"
	"github.com/librisapp/libris/pkg/respond"
	"github.com/pkg/errors"
)

type handler struct {
	authorService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.authorService.ListAuthors(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.List(c, http.StatusOK, authors, len(authors))
}

// retrieve returns the author along with all books referencing it.
func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	books, err := h.authorService.ListBooksByAuthor(ctx, author.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Author *models.Author `json:"author"`
		Books  []*models.Book `json:"books"`
	}{author, books}

	return respond.Data(c, http.StatusOK, resp)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CreateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author := &models.Author{
		Name:        params.Name,
		Bio:         params.Bio,
		Nationality: params.Nationality,
		DateOfBirth: params.DateOfBirth,
		Website:     params.Website,
	}

	err := h.authorService.CreateAuthor(ctx, author)
	if err != nil {
		return err
	}

	return respond.DataMessage(c, http.StatusCreated, author, "Author created successfully")
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Author")
	}

	// Bind params.
	params := UpdateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the author.
	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	// Keep track of what's been changed.
	opts := UpdateAuthorOptions{Columns: []string{}}

	if params.Name != nil && *params.Name != author.Name {
		author.Name = *params.Name
		opts.Columns = append(opts.Columns, "name")
	}
	if params.Bio != nil {
		author.Bio = params.Bio
		opts.Columns = append(opts.Columns, "bio")
	}
	if params.Nationality != nil {
		author.Nationality = params.Nationality
		opts.Columns = append(opts.Columns, "nationality")
	}
	if params.DateOfBirth != nil {
		author.DateOfBirth = params.DateOfBirth
		opts.Columns = append(opts.Columns, "date_of_birth")
	}
	if params.Website != nil {
		author.Website = params.Website
		opts.Columns = append(opts.Columns, "website")
	}

	// Update the model.
	err = h.authorService.UpdateAuthor(ctx, author, opts)
	if err != nil {
		return err
	}

	// Reload the model.
	author, err = h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, author, "Author updated successfully")
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Author")
	}

	// Fetch the prior representation so it can be returned.
	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	err = h.authorService.DeleteAuthor(ctx, author)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, author, "Author deleted successfully")
}
