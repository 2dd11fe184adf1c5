package chatcontroller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/7248-om/gshock12/chatbot"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

type chatResponse struct {
	Response string         `json:"response"`
	Cards    []chatbot.Card `json:"cards"`
	Message  string         `json:"message"`
}

func TestChatStoresInteraction(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.MenuItem{Name: "Cold Brew", Category: models.CategoryCoffee, Price: 210}).Error)

	reply := "Try this {{REC:http://img/cb.png|Cold Brew|210}} today!"
	gen := &fakeGenerator{reply: reply}
	r := testutil.NewRouter(t)
	r.POST("/api/chat", testutil.As("u1", "user"), Chat(db, gen))

	w := testutil.Do(r, http.MethodPost, "/api/chat", `{"message":"something cold?"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body chatResponse
	testutil.Decode(t, w, &body)
	assert.Equal(t, reply, body.Response)
	assert.Equal(t, "Success", body.Message)
	require.Len(t, body.Cards, 1)
	assert.Equal(t, chatbot.Card{ImageURL: "http://img/cb.png", Name: "Cold Brew", Price: 210}, body.Cards[0])

	assert.Contains(t, gen.prompt, "Cold Brew")
	assert.Contains(t, gen.prompt, "something cold?")

	var stored models.Interaction
	require.NoError(t, db.First(&stored).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, "u1", *stored.UserID)
	assert.Equal(t, chatbot.IntentGeneralChat, stored.Intent)
	assert.Equal(t, reply, stored.Response)
}

func TestChatGuestAndEmptyCatalog(t *testing.T) {
	db := testutil.NewDB(t)
	gen := &fakeGenerator{reply: "Hello!"}
	r := testutil.NewRouter(t)
	r.POST("/api/chat", Chat(db, gen))

	require.Equal(t, http.StatusOK, testutil.Do(r, http.MethodPost, "/api/chat", `{"message":"hi"}`).Code)
	assert.Contains(t, gen.prompt, chatbot.EmptyMenuNotice)

	var stored models.Interaction
	require.NoError(t, db.First(&stored).Error)
	assert.Nil(t, stored.UserID)
}

func TestChatFailures(t *testing.T) {
	db := testutil.NewDB(t)
	newRouter := func(gen chatbot.Generator) *gin.Engine {
		r := testutil.NewRouter(t)
		r.POST("/api/chat", Chat(db, gen))
		return r
	}

	r := newRouter(&fakeGenerator{reply: "unused"})
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodPost, "/api/chat", `{"message":"   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodPost, "/api/chat", `{}`).Code)

	w := testutil.Do(newRouter(&fakeGenerator{err: errors.New("quota")}), http.MethodPost, "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), coffeeBreak)

	assert.Equal(t, http.StatusServiceUnavailable, testutil.Do(newRouter(nil), http.MethodPost, "/api/chat", `{"message":"hi"}`).Code)

	var count int64
	db.Model(&models.Interaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestChatFailsWhenInteractionNotStored(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Interaction{}))

	gen := &fakeGenerator{reply: "Hello!"}
	r := testutil.NewRouter(t)
	r.POST("/api/chat", Chat(db, gen))

	w := testutil.Do(r, http.MethodPost, "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), coffeeBreak)
	assert.NotContains(t, w.Body.String(), "Hello!")
}
