package artistcontroller

import (
	"net/http"
	"testing"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func router(t *testing.T, db *gorm.DB, userID, role string) *gin.Engine {
	r := testutil.NewRouter(t)
	r.GET("/api/artists", GetArtists(db))
	r.GET("/api/artists/:id", GetArtist(db))
	authed := r.Group("/api/artists", testutil.As(userID, role))
	authed.POST("", CreateArtist(db))
	authed.PUT("/:id", UpdateArtist(db))
	return r
}

func TestCreateArtistOncePerUser(t *testing.T) {
	db := testutil.NewDB(t)
	r := router(t, db, "user-1", "user")

	w := testutil.Do(r, http.MethodPost, "/api/artists", `{"bio":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(r, http.MethodPost, "/api/artists", `{"displayName":"Mira Rao","artStyles":["Abstract"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var a models.Artist
	testutil.Decode(t, w, &a)
	assert.True(t, a.IsActive)
	assert.Equal(t, "user-1", a.UserID)

	w = testutil.Do(r, http.MethodPost, "/api/artists", `{"displayName":"Mira Again"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User already has an artist profile"}`, w.Body.String())

	var count int64
	db.Model(&models.Artist{}).Where("user_id = ?", "user-1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetArtistByIDNameOrPlaceholder(t *testing.T) {
	db := testutil.NewDB(t)
	r := router(t, db, "user-1", "user")

	artist := models.Artist{UserID: "user-1", DisplayName: "Mira Rao", IsActive: true}
	require.NoError(t, db.Create(&artist).Error)

	w := testutil.Do(r, http.MethodGet, "/api/artists/"+artist.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Artist
	testutil.Decode(t, w, &got)
	assert.Equal(t, "Mira Rao", got.DisplayName)

	w = testutil.Do(r, http.MethodGet, "/api/artists/mira%20rao", nil)
	testutil.Decode(t, w, &got)
	assert.Equal(t, artist.ID, got.ID)

	w = testutil.Do(r, http.MethodGet, "/api/artists/Unknown%20Painter", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"temp","displayName":"Unknown Painter","bio":"Artist profile coming soon.","artStyles":[],"isActive":true}`, w.Body.String())
}

func TestGetArtistsFilters(t *testing.T) {
	db := testutil.NewDB(t)
	r := router(t, db, "u", "user")

	require.NoError(t, db.Create(&models.Artist{UserID: "a", DisplayName: "A", IsActive: true, IsFeatured: true, ArtStyles: models.Tags{"urban"}}).Error)
	require.NoError(t, db.Create(&models.Artist{UserID: "b", DisplayName: "B", IsActive: true, ArtStyles: models.Tags{"calm"}}).Error)
	require.NoError(t, db.Create(&models.Artist{UserID: "c", DisplayName: "C", IsActive: false}).Error)

	var list []models.Artist
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/artists", nil), &list)
	assert.Len(t, list, 2)

	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/artists?featured=true", nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].DisplayName)

	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/artists?style=CALM", nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].DisplayName)
}

func TestUpdateArtistOwnership(t *testing.T) {
	db := testutil.NewDB(t)
	artist := models.Artist{UserID: "owner", DisplayName: "Owner Art", IsActive: true}
	require.NoError(t, db.Create(&artist).Error)

	w := testutil.Do(router(t, db, "stranger", "user"), http.MethodPut, "/api/artists/"+artist.ID, `{"bio":"hijack"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Artist not found or unauthorized"}`, w.Body.String())

	w = testutil.Do(router(t, db, "owner", "user"), http.MethodPut, "/api/artists/"+artist.ID, `{"bio":"new bio","isFeatured":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(router(t, db, "someone", "admin"), http.MethodPut, "/api/artists/"+artist.ID, `{"isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Artist
	require.NoError(t, db.First(&got, "id = ?", artist.ID).Error)
	assert.Equal(t, "new bio", got.Bio)
	assert.True(t, got.IsFeatured)
	assert.False(t, got.IsActive)
}
