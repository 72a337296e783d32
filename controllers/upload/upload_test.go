package uploadcontroller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFile(t *testing.T, r *gin.Engine, field, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImageUploadSanitizesFilename(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	r.POST("/upload", HandleImageUpload(dir))

	w := uploadFile(t, r, "image", "my photo!(1).png")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		FilePath string `json:"filePath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.True(t, strings.HasPrefix(payload.FilePath, "uploads/"))
	assert.Contains(t, payload.FilePath, "my_photo__1_.png")

	saved := filepath.Join(dir, strings.TrimPrefix(payload.FilePath, "uploads/"))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestImageUploadStripsPathComponents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	r.POST("/upload", HandleImageUpload(dir))

	w := uploadFile(t, r, "image", "../../etc/passwd")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		FilePath string `json:"filePath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.NotContains(t, payload.FilePath, "..")
	assert.NotContains(t, strings.TrimPrefix(payload.FilePath, "uploads/"), "/")
}

func TestImageUploadRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", HandleImageUpload(t.TempDir()))

	w := uploadFile(t, r, "document", "file.png")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
