package books

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
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.List(c, http.StatusOK, books, len(books))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, book)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	inStock := true
	if params.InStock != nil {
		inStock = *params.InStock
	}

	book := &models.Book{
		Title:         params.Title,
		Type:          params.Type,
		AuthorID:      params.AuthorID,
		Genre:         params.Genre,
		Price:         params.Price,
		Description:   params.Description,
		PublishedYear: params.PublishedYear,
		Publisher:     params.Publisher,
		Issue:         params.Issue,
		PublishedDate: params.PublishedDate,
		InStock:       inStock,
	}

	err := h.bookService.CreateBook(ctx, book)
	if err != nil {
		return err
	}

	// Reload with the author expanded.
	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &book.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusCreated, book, "Book created successfully")
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Book")
	}

	// Bind params.
	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the book.
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	// Keep track of what's been changed.
	opts := UpdateBookOptions{Columns: []string{}}

	if params.Title != nil && *params.Title != book.Title {
		book.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.AuthorID != nil {
		// Journals never reference an author.
		if book.Type == models.TypeJournal {
			return errcodes.ValidationFailed(`"author_id" is not allowed for journals`)
		}
		book.AuthorID = params.AuthorID
		opts.Columns = append(opts.Columns, "author_id")
	}
	if params.Genre != nil && *params.Genre != book.Genre {
		book.Genre = *params.Genre
		opts.Columns = append(opts.Columns, "genre")
	}
	if params.Price != nil && *params.Price != book.Price {
		book.Price = *params.Price
		opts.Columns = append(opts.Columns, "price")
	}
	if params.Description != nil {
		book.Description = params.Description
		opts.Columns = append(opts.Columns, "description")
	}
	if params.PublishedYear != nil {
		book.PublishedYear = params.PublishedYear
		opts.Columns = append(opts.Columns, "published_year")
	}
	if params.InStock != nil && *params.InStock != book.InStock {
		book.InStock = *params.InStock
		opts.Columns = append(opts.Columns, "in_stock")
	}

	// Update the model.
	err = h.bookService.UpdateBook(ctx, book, opts)
	if err != nil {
		return err
	}

	// Reload the model.
	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, book, "Book updated successfully")
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Book")
	}

	// Fetch the prior representation so it can be returned.
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	err = h.bookService.DeleteBook(ctx, book)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, book, "Book deleted successfully")
}
