package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfphub-backend/internal/vendors/domain"
	"rfphub-backend/internal/vendors/usecase"
)

type stubVendorUsecase struct {
	vendor *domain.Vendor
	err    error

	deletedID uint
}

func (s *stubVendorUsecase) List() ([]*domain.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Vendor{s.vendor}, nil
}

func (s *stubVendorUsecase) Create(name, email, phone string) (*domain.Vendor, error) {
	return s.vendor, s.err
}

func (s *stubVendorUsecase) Update(id uint, name, email, phone string) (*domain.Vendor, error) {
	return s.vendor, s.err
}

func (s *stubVendorUsecase) Delete(id uint) error {
	s.deletedID = id
	return s.err
}

func setupRouter(uc usecase.VendorUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewVendorHandler(uc)

	r := gin.New()
	r.GET("/api/vendors", handler.List)
	r.POST("/api/vendors", handler.Create)
	r.PUT("/api/vendors/:id", handler.Update)
	r.DELETE("/api/vendors/:id", handler.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestVendorCreate_Endpoint(t *testing.T) {
	stub := &stubVendorUsecase{vendor: &domain.Vendor{ID: 1, Name: "Acme", Email: "acme@example.com"}}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodPost, "/api/vendors", `{"name":"Acme","email":"acme@example.com"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Acme"`)
}

func TestVendorCreate_MissingFields(t *testing.T) {
	r := setupRouter(&stubVendorUsecase{})

	w := doJSON(r, http.MethodPost, "/api/vendors", `{"name":"Acme"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name and email are required"}`, w.Body.String())
}

func TestVendorUpdate_NotFound(t *testing.T) {
	r := setupRouter(&stubVendorUsecase{err: usecase.ErrVendorNotFound})

	w := doJSON(r, http.MethodPut, "/api/vendors/99", `{"name":"Acme"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Vendor not found"}`, w.Body.String())
}

func TestVendorDelete_Endpoint(t *testing.T) {
	stub := &stubVendorUsecase{}
	r := setupRouter(stub)

	w := doJSON(r, http.MethodDelete, "/api/vendors/7", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(7), stub.deletedID)
}

func TestVendorDelete_InvalidID(t *testing.T) {
	r := setupRouter(&stubVendorUsecase{})

	w := doJSON(r, http.MethodDelete, "/api/vendors/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}
