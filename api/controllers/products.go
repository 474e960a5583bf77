package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/fireshop-backend/api/responses"
	"github.com/angelmondragon/fireshop-backend/api/validators"
	product "github.com/angelmondragon/fireshop-backend/internal/products"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

// ListProducts answers the catalog listing with page/limit query parameters.
func ListProducts(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		params := product.ParseListParams(
			r.URL.Query().Get("page"),
			r.URL.Query().Get("limit"),
		)

		items, err := svc.ListProducts(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// GetProduct answers a single product by its numeric path id.
func GetProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := product.ParsePathID(chi.URLParam(r, "id"), product.MessageIDNotNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.GetProduct(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// CreateProduct normalizes the flat admin form and stores a new product.
func CreateProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var form product.RawProductForm
		if err := validators.DecodeRequestBody(r, &form); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := product.NormalizeCreate(form)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.CreateProduct(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// UpdateProduct applies a partial update to the product at the path id.
func UpdateProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := product.ParsePathID(chi.URLParam(r, "id"), product.MessageIDNotNumberUpdate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var form product.RawProductForm
		if err := validators.DecodeRequestBody(r, &form); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := product.NormalizeUpdate(form)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated, err := svc.UpdateProduct(ctx, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, updated)
	}
}

// DeleteProduct removes the product at the path id and returns the deleted row.
func DeleteProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := product.ParsePathID(chi.URLParam(r, "id"), product.MessageIDNotNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deleted, err := svc.DeleteProduct(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, deleted)
	}
}
