package mediacontroller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/7248-om/gshock12/testutil"
	"github.com/7248-om/gshock12/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFileUpload(t *testing.T) {
	store := uploads.NewStore(t.TempDir(), "http://cafe.test")
	r := testutil.NewRouter(t)
	r.POST("/api/media/upload", HandleFileUpload(store))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("folder", "Artworks"))
	part, err := mw.CreateFormFile("file", "../evil name.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		URL string `json:"url"`
	}
	testutil.Decode(t, w, &body)
	assert.True(t, strings.HasPrefix(body.URL, "http://cafe.test/uploads/artworks/"), body.URL)
	assert.True(t, strings.HasSuffix(body.URL, "_evil_name.jpg"), body.URL)

	w = testutil.Do(r, http.MethodPost, "/api/media/upload", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
