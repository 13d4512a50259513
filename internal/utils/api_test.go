package utils_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/utils"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 34, 56, 789000000, time.UTC)
	id := uuid.New()

	cursor := utils.EncodeCursor(ts, id)

	gotTime, gotID, err := utils.DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(ts))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursorErrors(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, _, err := utils.DecodeCursor("not-base64!")
		assert.Error(t, err)
	})

	t.Run("missing separator", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("no-comma-here"))
		_, _, err := utils.DecodeCursor(encoded)
		assert.Error(t, err)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("yesterday," + uuid.NewString()))
		_, _, err := utils.DecodeCursor(encoded)
		assert.Error(t, err)
	})

	t.Run("bad uuid", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano) + ",nope"))
		_, _, err := utils.DecodeCursor(encoded)
		assert.Error(t, err)
	})
}

func TestRenderResponse(t *testing.T) {
	t.Run("renders json body", func(t *testing.T) {
		w := httptest.NewRecorder()
		utils.RenderResponse(w, http.StatusOK, map[string]string{"hello": "world"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
	})

	t.Run("nil body writes status only", func(t *testing.T) {
		w := httptest.NewRecorder()
		utils.RenderResponse(w, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("api error body", func(t *testing.T) {
		w := httptest.NewRecorder()
		ae := utils.NewConflict("Not enough seats available.")
		utils.RenderResponse(w, ae.StatusCode, ae)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Not enough seats available."}`, w.Body.String())
	})
}

func TestJsonDecodeBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))

	var dst struct {
		Name string `json:"name"`
	}
	require.NoError(t, utils.JsonDecodeBody(req, &dst))
	assert.Equal(t, "Jane", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	assert.Error(t, utils.JsonDecodeBody(req, &dst))
}
