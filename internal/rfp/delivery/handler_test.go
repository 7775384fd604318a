package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfphub-backend/internal/rfp/domain"
	"rfphub-backend/internal/rfp/usecase"
	"rfphub-backend/pkg/ai"
)

type stubRfpUsecase struct {
	rfp        *domain.Rfp
	detail     *usecase.RfpDetail
	comparison *ai.ComparisonResult
	err        error

	sentID        uint
	sentVendorIDs []uint
	deletedID     uint
}

func (s *stubRfpUsecase) CreateFromText(ctx context.Context, text string) (*domain.Rfp, error) {
	return s.rfp, s.err
}

func (s *stubRfpUsecase) List() ([]*domain.Rfp, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Rfp{s.rfp}, nil
}

func (s *stubRfpUsecase) GetByID(id uint) (*usecase.RfpDetail, error) {
	return s.detail, s.err
}

func (s *stubRfpUsecase) SendToVendors(id uint, vendorIDs []uint) error {
	s.sentID = id
	s.sentVendorIDs = vendorIDs
	return s.err
}

func (s *stubRfpUsecase) Compare(ctx context.Context, id uint) (*ai.ComparisonResult, error) {
	return s.comparison, s.err
}

func (s *stubRfpUsecase) Delete(id uint) error {
	s.deletedID = id
	return s.err
}

func setupRouter(uc usecase.RfpUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRfpHandler(uc)

	r := gin.New()
	r.POST("/api/rfps/from-text", handler.CreateFromText)
	r.GET("/api/rfps", handler.List)
	r.GET("/api/rfps/:id", handler.GetByID)
	r.POST("/api/rfps/:id/send", handler.Send)
	r.GET("/api/rfps/:id/compare", handler.Compare)
	r.DELETE("/api/rfps/:id", handler.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateFromText_Endpoint(t *testing.T) {
	stub := &stubRfpUsecase{rfp: &domain.Rfp{ID: 1, Title: "Laptops", Description: "50 laptops"}}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodPost, "/api/rfps/from-text", `{"text":"we need 50 laptops"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Laptops"`)
}

func TestCreateFromText_MissingText(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{})

	w := doJSON(r, http.MethodPost, "/api/rfps/from-text", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"text is required"}`, w.Body.String())
}

func TestGetByID_NotFoundResponse(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{err: usecase.ErrRfpNotFound})

	w := doJSON(r, http.MethodGet, "/api/rfps/99", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"RFP not found"}`, w.Body.String())
}

func TestGetByID_InvalidID(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{})

	w := doJSON(r, http.MethodGet, "/api/rfps/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}

func TestSend_Endpoint(t *testing.T) {
	stub := &stubRfpUsecase{}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodPost, "/api/rfps/1/send", `{"vendorIds":[1,2]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), stub.sentID)
	assert.Equal(t, []uint{1, 2}, stub.sentVendorIDs)
}

func TestSend_MissingVendorIDs(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{})

	w := doJSON(r, http.MethodPost, "/api/rfps/1/send", `{"vendorIds":[]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"vendorIds array is required"}`, w.Body.String())
}

func TestSend_NoVendorsFound(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{err: usecase.ErrNoVendors})

	w := doJSON(r, http.MethodPost, "/api/rfps/1/send", `{"vendorIds":[42]}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No vendors found with the provided IDs"}`, w.Body.String())
}

func TestCompare_NoProposals(t *testing.T) {
	r := setupRouter(&stubRfpUsecase{err: usecase.ErrNoProposals})

	w := doJSON(r, http.MethodGet, "/api/rfps/1/compare", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No proposals to compare"}`, w.Body.String())
}

func TestCompare_Endpoint(t *testing.T) {
	stub := &stubRfpUsecase{comparison: &ai.ComparisonResult{Recommendation: "Acme", Rationale: "cheapest"}}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodGet, "/api/rfps/1/compare", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommendation":"Acme"`)
}

func TestDelete_Endpoint(t *testing.T) {
	stub := &stubRfpUsecase{}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodDelete, "/api/rfps/1", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(1), stub.deletedID)
}
