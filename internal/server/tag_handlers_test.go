package server

import (
	"fmt"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "alice")

	t.Run("create requires authentication", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/tags", "", fiber.Map{"name": "go"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	goID := createTag(t, app, token, "go")

	t.Run("duplicate name is rejected", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/tags", token, fiber.Map{"name": "go"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Contains(t, body.Errors, "name")
	})

	t.Run("name is required", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/tags", token, fiber.Map{"name": "  "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list is public and sorted by name", func(t *testing.T) {
		createTag(t, app, token, "databases")
		createTag(t, app, token, "web")

		resp := doRequest(t, app, http.MethodGet, "/api/tags", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tags []models.TagView
		decodeBody(t, resp, &tags)
		require.Len(t, tags, 3)
		assert.Equal(t, "databases", tags[0].Name)
		assert.Equal(t, "go", tags[1].Name)
		assert.Equal(t, "web", tags[2].Name)
	})

	t.Run("rename", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut,
			fmt.Sprintf("/api/tags/%d", goID), token, fiber.Map{"name": "golang"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tag models.TagView
		decodeBody(t, resp, &tag)
		assert.Equal(t, "golang", tag.Name)
	})

	t.Run("delete", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodDelete,
			fmt.Sprintf("/api/tags/%d", goID), token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		getResp := doRequest(t, app, http.MethodGet,
			fmt.Sprintf("/api/tags/%d", goID), "", nil)
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})
}
