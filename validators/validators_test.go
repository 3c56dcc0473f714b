package validators

import (
	"elearning/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title string `json:"title" validate:"required"`
}

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"min=18"`
	Items []item `json:"items" validate:"dive"`
}

func TestStructUsesJSONNames(t *testing.T) {
	err := Struct(&sample{Email: "nope", Age: 3, Items: []item{{}}})

	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email must be a valid email address", verr.Fields["email"])
	assert.Contains(t, verr.Fields, "age")
	assert.Equal(t, "title is required", verr.Fields["items[0].title"])
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(&sample{Email: "a@b.io", Age: 30}))
}

func TestBodyMiddleware(t *testing.T) {
	app := fiber.New()
	app.Post("/", Body[sample]("reqData"), func(c *fiber.Ctx) error {
		reqData := c.Locals("reqData").(*sample)
		return c.SendString(reqData.Email)
	})

	send := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, http.StatusOK, send(`{"email":"a@b.io","age":20}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, send(`{"email":`).StatusCode)
	// validation errors reach the error handler, the default one answers 500
	assert.Equal(t, http.StatusInternalServerError, send(`{"email":"x"}`).StatusCode)
}

func TestValidID(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var invalid *utils.InvalidIDError
			if errors.As(err, &invalid) {
				return c.Status(fiber.StatusBadRequest).SendString(invalid.Error())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Get("/:id", ValidID(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/123", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
