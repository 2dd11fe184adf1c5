package qrcontroller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/qr"
	"github.com/7248-om/gshock12/testutil"
	"github.com/7248-om/gshock12/uploads"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type brokenGenerator struct{}

func (brokenGenerator) Generate(string) ([]byte, string, error) {
	return nil, "", errors.New("encoder failed")
}

func router(t *testing.T, db *gorm.DB, gen qr.Generator, store *uploads.Store) *gin.Engine {
	r := testutil.NewRouter(t)
	r.POST("/api/admin/qr", CreateTableQR(db, gen, store))
	r.GET("/api/admin/qr", GetTableQRs(db))
	r.DELETE("/api/admin/qr/:id", DeleteTableQR(db, store))
	return r
}

func TestTableQRLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	store := uploads.NewStore(t.TempDir(), "http://cafe.test")
	r := router(t, db, qr.TableGenerator{FrontendURL: "http://front.test/"}, store)

	w := testutil.Do(r, http.MethodPost, "/api/admin/qr", `{"label":"T 4"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		QR models.TableQR `json:"qr"`
	}
	testutil.Decode(t, w, &body)
	assert.Equal(t, "http://front.test/menu?table=T+4", body.QR.TargetURL)
	require.True(t, strings.HasPrefix(body.QR.FileURL, "http://cafe.test/uploads/qr/"))

	onDisk := filepath.Join(store.Dir, "qr", body.QR.FileName)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])

	var list []models.TableQR
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/admin/qr", nil), &list)
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusOK, testutil.Do(r, http.MethodDelete, "/api/admin/qr/"+body.QR.ID, nil).Code)
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, http.StatusNotFound, testutil.Do(r, http.MethodDelete, "/api/admin/qr/"+body.QR.ID, nil).Code)
}

func TestCreateTableQRErrors(t *testing.T) {
	db := testutil.NewDB(t)
	store := uploads.NewStore(t.TempDir(), "http://cafe.test")

	r := router(t, db, qr.TableGenerator{FrontendURL: "http://front.test"}, store)
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodPost, "/api/admin/qr", `{"label":"  "}`).Code)

	r = router(t, db, brokenGenerator{}, store)
	assert.Equal(t, http.StatusInternalServerError, testutil.Do(r, http.MethodPost, "/api/admin/qr", `{"label":"T1"}`).Code)
}
