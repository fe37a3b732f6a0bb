package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/assignment"
	"github.com/summitfg/summit-api/pkg/leads"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

func newLeadHandler(db *gorm.DB) *LeadHandler {
	return NewLeadHandler(leads.NewService(db, nil), assignment.NewService(db), nil)
}

func TestLeadHandler_CreateLead_Success(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	body := `{"name":"Maria Santos","email":"maria@example.com","source":"landing_page"}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/leads", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateLead(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "Maria Santos", lead.Name)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Empty(t, lead.OwnerEmail)
}

func TestLeadHandler_CreateLead_ValidationFailure(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	req, rec := newJSONRequest(http.MethodPost, "/api/v1/leads", `{"email":"no-name@example.com"}`)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateLead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_CreateLead_AutoAssign(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	_, err := assignment.NewService(db).SetOwners(t.Context(), []string{"x@summit.com", "y@summit.com"})
	require.NoError(t, err)

	body := `{"name":"Auto Lead","auto_assign":true}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/leads", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateLead(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "x@summit.com", lead.OwnerEmail)
}

func TestLeadHandler_CreateLead_AutoAssignWithoutRotation(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	body := `{"name":"Orphan Lead","auto_assign":true}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/leads", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateLead(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Empty(t, lead.OwnerEmail)
}

func TestLeadHandler_LeadWebhook_AssignsAndTagsSource(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	_, err := assignment.NewService(db).SetOwners(t.Context(), []string{"x@summit.com"})
	require.NoError(t, err)

	body := `{"name":"Webhook Lead","owner_email":"attacker@evil.com"}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/leads/webhook", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.LeadWebhook(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "x@summit.com", lead.OwnerEmail)
	assert.Equal(t, "webhook", lead.Source)
}

func TestLeadHandler_GetLead_NotFound(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	req, rec := newJSONRequest(http.MethodGet, "/api/v1/leads/999", "")
	c := newContext(t, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, handler.GetLead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandler_GetLead_InvalidID(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	req, rec := newJSONRequest(http.MethodGet, "/api/v1/leads/abc", "")
	c := newContext(t, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetLead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_UpdateLead_Partial(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	seeded := models.Lead{Name: "Seed", Status: models.LeadStatusNew, Notes: "keep me"}
	require.NoError(t, db.Create(&seeded).Error)

	req, rec := newJSONRequest(http.MethodPatch, "/api/v1/leads/1", `{"status":"contacted"}`)
	c := newContext(t, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.UpdateLead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, models.LeadStatusContacted, lead.Status)
	assert.Equal(t, "keep me", lead.Notes)
}

func TestLeadHandler_DeleteLead(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	require.NoError(t, db.Create(&models.Lead{Name: "Doomed"}).Error)

	req, rec := newJSONRequest(http.MethodDelete, "/api/v1/leads/1", "")
	c := newContext(t, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.DeleteLead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["deleted"])

	// Second delete finds nothing but still succeeds
	req, rec = newJSONRequest(http.MethodDelete, "/api/v1/leads/1", "")
	c = newContext(t, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.DeleteLead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp["deleted"])
}

func TestLeadHandler_ListLeads_ScopedByRole(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newLeadHandler(db)

	require.NoError(t, db.Create(&models.Lead{Name: "A", OwnerEmail: "x@summit.com"}).Error)
	require.NoError(t, db.Create(&models.Lead{Name: "B", OwnerEmail: "y@summit.com"}).Error)

	// Associate sees only their own leads
	req, rec := newJSONRequest(http.MethodGet, "/api/v1/leads", "")
	c := newContext(t, req, rec)
	c.Set("user_email", "x@summit.com")
	c.Set("user_role", models.RoleAssociate)

	require.NoError(t, handler.ListLeads(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "A", resp.Leads[0].Name)

	// Founder sees everything
	req, rec = newJSONRequest(http.MethodGet, "/api/v1/leads", "")
	c = newContext(t, req, rec)
	c.Set("user_email", "founder@summit.com")
	c.Set("user_role", models.RoleFounder)

	require.NoError(t, handler.ListLeads(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}
