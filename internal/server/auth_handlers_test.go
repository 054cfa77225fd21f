package server

import (
	"net/http"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	t.Run("creates account and returns token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body authResponse
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "alice@example.com", body.User.Email)
	})

	t.Run("rejects duplicate username with the canonical message", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "alice",
			"email":    "other@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, models.CodeValidation, body.Code)
		assert.Equal(t, []string{validation.ErrUsernameTaken}, body.Errors["username"])
	})

	t.Run("rejects five character password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "12345",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Contains(t, body.Errors, "password")
	})

	t.Run("accepts six character password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "123456",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"password": "password123",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Contains(t, body.Errors, "username")
		assert.Contains(t, body.Errors, "email")
	})
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "carol")

	t.Run("valid credentials", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "carol",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body authResponse
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "carol", body.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "carol",
			"password": "wrong-password",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, models.CodeUnauthorized, body.Code)
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "nobody",
			"password": "password123",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, "Invalid credentials", body.Error)
	})
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/posts", "", fiber.Map{
			"title": "x", "content": "y",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/posts", "not-a-jwt", fiber.Map{
			"title": "x", "content": "y",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("likes reads require authentication", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/likes", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
