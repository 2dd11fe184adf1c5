package adminController

import (
	"net/http"
	"testing"
	"time"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&[]models.User{
		{Email: "boss@cafe.com", Role: models.RoleAdmin},
		{Email: "guest@cafe.com", Role: models.RoleUser},
	}).Error)
	require.NoError(t, db.Create(&[]models.Order{
		{UserID: "u1", TotalAmount: 300, PaymentStatus: models.PaymentStatusPaid},
		{UserID: "u1", TotalAmount: 120.5, PaymentStatus: models.PaymentStatusPaid},
		{UserID: "u2", TotalAmount: 99, PaymentStatus: models.PaymentStatusPending},
	}).Error)
	require.NoError(t, db.Create(&models.Workshop{Title: "Cupping", Date: time.Now().Add(48 * time.Hour)}).Error)
	require.NoError(t, db.Create(&models.FranchiseLead{Name: "Asha", Email: "a@x.com"}).Error)

	r := testutil.NewRouter(t)
	r.GET("/api/admin/admins", GetAllAdmins(db))
	r.GET("/api/admin/stats", GetStats(db))
	r.GET("/api/admin/pending", ListPendingApprovals(db))

	var admins []models.User
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/admin/admins", nil), &admins)
	require.Len(t, admins, 1)
	assert.Equal(t, "boss@cafe.com", admins[0].Email)

	var stats Stats
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/admin/stats", nil), &stats)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(3), stats.Orders)
	assert.Equal(t, int64(2), stats.PaidOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.InDelta(t, 420.5, stats.Revenue, 0.001)
	assert.Equal(t, int64(1), stats.PendingWorkshops)
	assert.Equal(t, int64(1), stats.NewLeads)

	var pending struct {
		Workshops []models.Workshop      `json:"workshops"`
		Leads     []models.FranchiseLead `json:"leads"`
	}
	testutil.Decode(t, testutil.Do(r, http.MethodGet, "/api/admin/pending", nil), &pending)
	assert.Len(t, pending.Workshops, 1)
	assert.Len(t, pending.Leads, 1)
}
