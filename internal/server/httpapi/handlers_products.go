package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopkeeper/shopkeeper/internal/common"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

func (s *Server) addProducts(w http.ResponseWriter, r *http.Request) {
	var batch []*models.Product
	if !parseJSONBody(w, r, &batch) {
		return
	}

	products, err := s.products.AddBatch(r.Context(), batch)
	if err != nil {
		s.logger.Error(r.Context(), "adding products failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error adding products",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Products added successfully",
		"products": products,
	})
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var upd models.ProductUpdate
	if !parseJSONBody(w, r, &upd) {
		return
	}

	product, err := s.products.Update(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Product not found")
			return
		}
		s.logger.Error(r.Context(), "updating product failed", "error", err.Error())
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing products failed", "error", err.Error())
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
