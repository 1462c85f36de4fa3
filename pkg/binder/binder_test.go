package binder

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Title string `json:"title" mod:"trim" validate:"required,max=9"`
	Genre string `json:"genre" default:"Other" validate:"oneof=Fiction Other"`
	Omit  string `json:"-"`
}

type datedParams struct {
	DateOfBirth   *string `json:"date_of_birth,omitempty" validate:"omitempty,date"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"omitempty,pubyear"`
}

var (
	goodJSON             = `{"title":" Dune "}`
	unknownFieldsErrJSON = `{"title":"Dune","foo":"bar"}`
	typeErrJSON          = `{"title":123}`
	validationErrJSON    = `{"title":"0123456789","genre":"Poetry"}`
)

func TestNew(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)
	assert.NotNil(t, b)

	t.Run("only allows application/json and application/x-www-form-urlencoded", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationXML)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Unsupported Media Type")
	})

	t.Run("disallows unknown fields", func(tt *testing.T) {
		c := newContext(unknownFieldsErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, errMessages(err), `Unknown Parameter "foo"`)
	})

	t.Run("returns a good message for type errors", func(tt *testing.T) {
		c := newContext(typeErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, errMessages(err), `"title" should be of type string`)
	})

	t.Run("use mod tag to modify params and default tag to fill gaps", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "Dune", p.Title)
		assert.Equal(tt, "Other", p.Genre)
	})

	t.Run("collects one message per violated field", func(tt *testing.T) {
		c := newContext(validationErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)

		e := &errcodes.Error{}
		require.True(tt, errors.As(err, &e))
		require.Len(tt, e.Errors, 2)
		assert.Equal(tt, `"title" length must be less than or equal to 9 characters`, e.Errors[0])
		assert.Equal(tt, `"genre" must be one of the following: "Fiction", "Other"`, e.Errors[1])
	})

	t.Run("rejects empty bodies on mutating methods", func(tt *testing.T) {
		c := newContext("", echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Request body can't be empty.")
	})
}

func TestCustomValidators(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)

	cases := []struct {
		name    string
		payload string
		msg     string
	}{
		{"valid date", `{"date_of_birth":"1920-01-02"}`, ""},
		{"non-ISO date", `{"date_of_birth":"02/01/1920"}`, `"date_of_birth" should be in the format of YYYY-MM-DD`},
		{"impossible date", `{"date_of_birth":"1920-13-41"}`, `"date_of_birth" should be in the format of YYYY-MM-DD`},
		{"valid url", `{"website":"https://example.com/about"}`, ""},
		{"relative url", `{"website":"/about"}`, `"website" is not a valid URL`},
		{"non-http scheme", `{"website":"ftp://example.com"}`, `"website" is not a valid URL`},
		{"valid year", `{"published_year":1965}`, ""},
		{"year too early", `{"published_year":999}`, `"published_year" must be between 1000 and the current year`},
		{"year in the future", `{"published_year":3000}`, `"published_year" must be between 1000 and the current year`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(tt *testing.T) {
			tt.Parallel()

			c := newContext(tc.payload, echo.MIMEApplicationJSON)
			p := datedParams{}
			err := b.Bind(&p, c)
			if tc.msg == "" {
				assert.NoError(tt, err)
			} else {
				assert.Contains(tt, errMessages(err), tc.msg)
			}
		})
	}
}

func newContext(payload, mime string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, mime)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}

// errMessages flattens a bind error into a single string so assertions can
// match against either the message or the per-field errors.
func errMessages(err error) string {
	if err == nil {
		return ""
	}
	e := &errcodes.Error{}
	if errors.As(err, &e) {
		return e.Message + " " + strings.Join(e.Errors, " ")
	}
	return err.Error()
}
