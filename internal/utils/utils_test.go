package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		ctx := SetUserContext(ctx, 7, "maria", "ADMIN")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, 7, id)
		assert.Equal(t, "maria", GetUsernameFromContext(ctx))
		assert.Equal(t, "ADMIN", GetUserRoleFromContext(ctx))
	})

	t.Run("Empty context", func(t *testing.T) {
		id, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
		assert.Equal(t, 0, id)
		assert.Equal(t, "", GetUsernameFromContext(ctx))
		assert.Equal(t, "", GetUserRoleFromContext(ctx))
	})
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, "something broke", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "something broke", body["error"])
}

func TestPtrHelpers(t *testing.T) {
	p := StrPtr("fb.me/soyhub")
	assert.Equal(t, "fb.me/soyhub", *p)
	assert.Equal(t, "fb.me/soyhub", PtrString(p))
	assert.Equal(t, "", PtrString(nil))
}
