package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/saiteki-ops/saiteki/internal/cart/domain"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
)

type fakeCartService struct {
	createCalls int
	lastCreate  cartdomain.CreateRequest
	getErr      error
}

func (f *fakeCartService) Create(ctx context.Context, req cartdomain.CreateRequest) (*cartdomain.Response, error) {
	f.createCalls++
	f.lastCreate = req
	_ = ctx
	if req.CartName == "" {
		return nil, cartdomain.ErrInvalidName
	}
	return &cartdomain.Response{ID: "1", CartName: req.CartName}, nil
}

func (f *fakeCartService) List(ctx context.Context) ([]cartdomain.Response, error) {
	_ = ctx
	return []cartdomain.Response{}, nil
}

func (f *fakeCartService) Get(ctx context.Context, id string) (*cartdomain.Response, error) {
	_ = ctx
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &cartdomain.Response{ID: id, CartName: "Shopify"}, nil
}

func (f *fakeCartService) Update(ctx context.Context, req cartdomain.UpdateRequest) (*cartdomain.Response, error) {
	_ = ctx
	return &cartdomain.Response{ID: req.ID, CartName: "Shopify"}, nil
}

func (f *fakeCartService) Delete(ctx context.Context, id string) error {
	_ = ctx
	_ = id
	return nil
}

type fakeProductMappingService struct {
	createErr error
}

func (f *fakeProductMappingService) Create(ctx context.Context, req productcsvdomain.CreateRequest) (*productcsvdomain.Response, error) {
	_ = ctx
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &productcsvdomain.Response{ID: "1", CartID: req.CartID, ProductCodeColumn: req.ProductCodeColumn}, nil
}

func (f *fakeProductMappingService) List(ctx context.Context) ([]productcsvdomain.Response, error) {
	_ = ctx
	return nil, nil
}

func (f *fakeProductMappingService) Get(ctx context.Context, id string) (*productcsvdomain.Response, error) {
	_ = ctx
	_ = id
	return nil, productcsvdomain.ErrNotFound
}

func (f *fakeProductMappingService) GetByCart(ctx context.Context, cartID string) (*productcsvdomain.Response, error) {
	_ = ctx
	_ = cartID
	return nil, productcsvdomain.ErrNotFound
}

func (f *fakeProductMappingService) Update(ctx context.Context, req productcsvdomain.UpdateRequest) (*productcsvdomain.Response, error) {
	_ = ctx
	_ = req
	return nil, productcsvdomain.ErrNotFound
}

func (f *fakeProductMappingService) Delete(ctx context.Context, id string) error {
	_ = ctx
	_ = id
	return nil
}

func newTestRouter(srv *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	srv.engine = router
	srv.registerAPIRoutes()
	return router
}

func TestCreateCartReturnsData(t *testing.T) {
	cartSvc := &fakeCartService{}
	router := newTestRouter(&Server{cartSvc: cartSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/carts", bytes.NewBufferString(`{"cart_name":"Shopify"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if cartSvc.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", cartSvc.createCalls)
	}

	var body struct {
		Data cartdomain.Response `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.CartName != "Shopify" {
		t.Fatalf("expected cart name Shopify, got %q", body.Data.CartName)
	}
}

func TestCreateCartInvalidNameReturns400(t *testing.T) {
	router := newTestRouter(&Server{cartSvc: &fakeCartService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/carts", bytes.NewBufferString(`{"cart_name":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error errorPayload `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Type)
	}
}

func TestGetCartNotFoundReturns404(t *testing.T) {
	router := newTestRouter(&Server{cartSvc: &fakeCartService{getErr: cartdomain.ErrNotFound}})

	req := httptest.NewRequest(http.MethodGet, "/api/carts/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCreateProductCSVMappingConflictReturns409(t *testing.T) {
	router := newTestRouter(&Server{
		productMappingSvc: &fakeProductMappingService{createErr: productcsvdomain.ErrMappingExists},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/product-csv-mappings", bytes.NewBufferString(`{"cart_id":"1","product_code_column":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}
