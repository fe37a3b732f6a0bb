package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/inquiry"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

func newInquiryTestHandler(db *gorm.DB) *InquiryHandler {
	return NewInquiryHandler(inquiry.NewService(db, nil, nil, "", nil), nil)
}

func TestInquiryHandler_CreateInquiry(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newInquiryTestHandler(db)

	body := `{"name":"Ana Reyes","email":"ana@example.com","message":"Tell me about life insurance options"}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/inquiries", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateInquiry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var result models.Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Ana Reyes", result.Name)
	assert.NotZero(t, result.ID)
}

func TestInquiryHandler_CreateInquiry_RequiresMessage(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newInquiryTestHandler(db)

	body := `{"name":"Ana Reyes","email":"ana@example.com"}`
	req, rec := newJSONRequest(http.MethodPost, "/api/v1/inquiries", body)
	c := newContext(t, req, rec)

	require.NoError(t, handler.CreateInquiry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInquiryHandler_ListInquiries_NewestFirst(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newInquiryTestHandler(db)

	for _, body := range []string{
		`{"name":"First","email":"first@example.com","message":"first message"}`,
		`{"name":"Second","email":"second@example.com","message":"second message"}`,
	} {
		req, rec := newJSONRequest(http.MethodPost, "/api/v1/inquiries", body)
		require.NoError(t, handler.CreateInquiry(newContext(t, req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req, rec := newJSONRequest(http.MethodGet, "/api/v1/inquiries", "")
	require.NoError(t, handler.ListInquiries(newContext(t, req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var results []models.Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 2)
}
