package franchisecontroller

import (
	"net/http"
	"testing"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t)
	r.POST("/api/franchises", CreateLead(db))
	r.GET("/api/franchises", GetLeads(db))
	r.PUT("/api/franchises/:id/status", UpdateLeadStatus(db))
	r.DELETE("/api/franchises/:id", DeleteLead(db))

	w := testutil.Do(r, http.MethodPost, "/api/franchises", `{"name":"Asha","email":"Asha@Example.com","city":"Pune"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Lead models.FranchiseLead `json:"lead"`
	}
	testutil.Decode(t, w, &created)
	assert.Equal(t, models.LeadNew, created.Lead.Status)
	assert.Equal(t, "asha@example.com", created.Lead.Email)

	w = testutil.Do(r, http.MethodPost, "/api/franchises", `{"name":"No Mail"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodPost, "/api/franchises", `{"name":"X","email":"nope"}`).Code)

	id := created.Lead.ID
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodPut, "/api/franchises/"+id+"/status", `{"status":"Closed"}`).Code)
	require.Equal(t, http.StatusOK, testutil.Do(r, http.MethodPut, "/api/franchises/"+id+"/status", `{"status":"In Negotiation"}`).Code)

	var leads []models.FranchiseLead
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/franchises", nil), &leads)
	require.Len(t, leads, 1)
	assert.Equal(t, models.LeadInNegotiation, leads[0].Status)

	assert.Equal(t, http.StatusOK, testutil.Do(r, http.MethodDelete, "/api/franchises/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(r, http.MethodDelete, "/api/franchises/"+id, nil).Code)
}
