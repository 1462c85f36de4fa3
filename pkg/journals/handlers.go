package journals

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
	journalService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	journals, err := h.journalService.ListJournals(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.List(c, http.StatusOK, journals, len(journals))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Journal")
	}

	journal, err := h.journalService.RetrieveJournal(ctx, RetrieveJournalOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, journal)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CreateJournalPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	inStock := true
	if params.InStock != nil {
		inStock = *params.InStock
	}

	journal := &models.Book{
		Title:         params.Title,
		Genre:         models.GenreOther,
		Publisher:     &params.Publisher,
		Issue:         &params.Issue,
		Price:         params.Price,
		PublishedDate: params.PublishedDate,
		Description:   params.Description,
		InStock:       inStock,
	}

	err := h.journalService.CreateJournal(ctx, journal)
	if err != nil {
		return err
	}

	return respond.DataMessage(c, http.StatusCreated, journal, "Journal created successfully")
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Journal")
	}

	// Bind params.
	params := UpdateJournalPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the journal.
	journal, err := h.journalService.RetrieveJournal(ctx, RetrieveJournalOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	// Keep track of what's been changed.
	opts := UpdateJournalOptions{Columns: []string{}}

	if params.Title != nil && *params.Title != journal.Title {
		journal.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.Publisher != nil {
		journal.Publisher = params.Publisher
		opts.Columns = append(opts.Columns, "publisher")
	}
	if params.Issue != nil {
		journal.Issue = params.Issue
		opts.Columns = append(opts.Columns, "issue")
	}
	if params.Price != nil && *params.Price != journal.Price {
		journal.Price = *params.Price
		opts.Columns = append(opts.Columns, "price")
	}
	if params.PublishedDate != nil {
		journal.PublishedDate = params.PublishedDate
		opts.Columns = append(opts.Columns, "published_date")
	}
	if params.Description != nil {
		journal.Description = params.Description
		opts.Columns = append(opts.Columns, "description")
	}
	if params.InStock != nil && *params.InStock != journal.InStock {
		journal.InStock = *params.InStock
		opts.Columns = append(opts.Columns, "in_stock")
	}

	// Update the model.
	err = h.journalService.UpdateJournal(ctx, journal, opts)
	if err != nil {
		return err
	}

	// Reload the model.
	journal, err = h.journalService.RetrieveJournal(ctx, RetrieveJournalOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, journal, "Journal updated successfully")
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.InvalidIdentifier("Journal")
	}

	// Fetch the prior representation so it can be returned.
	journal, err := h.journalService.RetrieveJournal(ctx, RetrieveJournalOptions{
		ID: &id,
	})
	if err != nil {
		return err
	}

	err = h.journalService.DeleteJournal(ctx, journal)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusOK, journal, "Journal deleted successfully")
}
