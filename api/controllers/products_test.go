package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	product "github.com/angelmondragon/fireshop-backend/internal/products"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type stubProductService struct {
	listErr   error
	getCalled bool
	getErr    error
	created   *product.CreateProductInput
	updated   *product.UpdateProductInput
	deleted   bool
}

func (s *stubProductService) ListProducts(ctx context.Context, params product.ListParams) ([]*product.ProductDTO, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []*product.ProductDTO{{ID: 1, Title: "Thunder King"}}, nil
}

func (s *stubProductService) GetProduct(ctx context.Context, id int64) (*product.ProductDTO, error) {
	s.getCalled = true
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &product.ProductDTO{ID: id, Title: "Thunder King"}, nil
}

func (s *stubProductService) CreateProduct(ctx context.Context, input product.CreateProductInput) (*product.ProductDTO, error) {
	s.created = &input
	return &product.ProductDTO{ID: input.ID, Title: input.Title}, nil
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id int64, input product.UpdateProductInput) (*product.ProductDTO, error) {
	s.updated = &input
	return &product.ProductDTO{ID: id}, nil
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id int64) (*product.ProductDTO, error) {
	s.deleted = true
	return &product.ProductDTO{ID: id, Title: "Thunder King"}, nil
}

func requestWithID(method, target, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestGetProduct(t *testing.T) {
	logg := testLogger()

	t.Run("non numeric id answers 503 before the store is hit", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		GetProduct(stub, logg).ServeHTTP(rec, requestWithID(http.MethodGet, "/products/abc", "abc", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if stub.getCalled {
			t.Fatalf("service must not run for an unparsable id")
		}
		if !strings.Contains(rec.Body.String(), "Id must be a number , please try again") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("missing product answers 404", func(t *testing.T) {
		stub := &stubProductService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, product.MessageProductNotFound)}
		rec := httptest.NewRecorder()
		GetProduct(stub, logg).ServeHTTP(rec, requestWithID(http.MethodGet, "/products/7", "7", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No product was found ") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		GetProduct(stub, logg).ServeHTTP(rec, requestWithID(http.MethodGet, "/products/7", "7", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestListProducts(t *testing.T) {
	logg := testLogger()

	t.Run("store failure answers 400", func(t *testing.T) {
		stub := &stubProductService{listErr: pkgerrors.New(pkgerrors.CodeValidation, "Unable to find products")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		ListProducts(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Unable to find products") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products?page=2&limit=5", nil)
		ListProducts(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var payload struct {
			Data []*product.ProductDTO `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(payload.Data) != 1 || payload.Data[0].Title != "Thunder King" {
			t.Fatalf("unexpected payload %+v", payload)
		}
	})
}

func TestCreateProduct(t *testing.T) {
	logg := testLogger()

	t.Run("json body answers 201", func(t *testing.T) {
		stub := &stubProductService{}
		body := strings.NewReader(`{
			"productID": "100",
			"productTitle": "Thunder King",
			"productInStock": "on",
			"productBrand": "Black Cat",
			"productCategory": "Aerials",
			"productPackage": "1,4",
			"productUnitPrice": "5",
			"productCasePrice": "120"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/products/create", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		CreateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.created == nil {
			t.Fatalf("expected create to reach the service")
		}
		if stub.created.UnitPrice != "5.00" {
			t.Fatalf("expected normalized price, got %q", stub.created.UnitPrice)
		}
	})

	t.Run("form body answers 201", func(t *testing.T) {
		stub := &stubProductService{}
		form := "productID=101&productTitle=Comet&productBrand=Winda&productCategory=Fountains&productPackage=6&productUnitPrice=3&productCasePrice=18&productColors=Red&productColors=Blue"
		req := httptest.NewRequest(http.MethodPost, "/products/create", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		CreateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(stub.created.Colors) != 2 {
			t.Fatalf("expected repeated keys to bind, got %v", stub.created.Colors)
		}
	})

	t.Run("missing title answers 400", func(t *testing.T) {
		stub := &stubProductService{}
		req := httptest.NewRequest(http.MethodPost, "/products/create", strings.NewReader("productID=1&productCasePrice=10"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		CreateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if stub.created != nil {
			t.Fatalf("service must not run for an invalid form")
		}
	})
}

func TestUpdateProduct(t *testing.T) {
	logg := testLogger()

	t.Run("non numeric id answers 503", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		req := requestWithID(http.MethodPost, "/products/xyz", "xyz", strings.NewReader("productCasePrice=10"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		UpdateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if stub.updated != nil {
			t.Fatalf("service must not run for an unparsable id")
		}
		// The update route is the one without the stray space before the comma.
		if !strings.Contains(rec.Body.String(), "Id must be a number, please try again") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("success answers 201", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		req := requestWithID(http.MethodPost, "/products/7", "7", strings.NewReader("productCasePrice=10&productTitle=Renamed"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		UpdateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.updated == nil || stub.updated.Title == nil || *stub.updated.Title != "Renamed" {
			t.Fatalf("expected normalized update input, got %+v", stub.updated)
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	logg := testLogger()

	t.Run("non numeric id answers 503", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		DeleteProduct(stub, logg).ServeHTTP(rec, requestWithID(http.MethodDelete, "/products/nan", "nan", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if stub.deleted {
			t.Fatalf("service must not run for an unparsable id")
		}
		if !strings.Contains(rec.Body.String(), "Id must be a number , please try again") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("success answers 200 with the removed row", func(t *testing.T) {
		stub := &stubProductService{}
		rec := httptest.NewRecorder()
		DeleteProduct(stub, logg).ServeHTTP(rec, requestWithID(http.MethodDelete, "/products/7", "7", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Thunder King") {
			t.Fatalf("expected deleted row in body: %s", rec.Body.String())
		}
	})
}
