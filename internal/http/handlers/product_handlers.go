package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

func (s *Server) writeProduct(w http.ResponseWriter, r *http.Request, status int, pathID *int,
	apply func(id int, name string, quantity int, price float64) (ProductResponse, error)) {
	in, err := decodeProduct(w, r, pathID)
	if err != nil {
		if _, ok := repo.AsValidationError(err); ok {
			s.respondStoreError(w, err)
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	resp, err := apply(in.ID, in.Name, in.Quantity, in.Price)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respond(w, status, resp)
}

// CreateProductHandler godoc
// @Summary Add a product
// @Description Appends a product to the inventory; it becomes the newest item
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate ID"
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	s.writeProduct(w, r, http.StatusCreated, nil, func(id int, name string, qty int, price float64) (ProductResponse, error) {
		created, err := s.products.Add(id, name, qty, price)
		if err != nil {
			return ProductResponse{}, err
		}
		s.log.Info().Int("id", created.ID).Str("name", created.Name).Msg("product added")
		return toProductResponse(created, s.products.LowStockThreshold()), nil
	})
}

// UpdateProductHandler godoc
// @Summary Update a product by ID
// @Description Replaces name, quantity and price; ID and list position are kept
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	s.writeProduct(w, r, http.StatusOK, &id, func(id int, name string, qty int, price float64) (ProductResponse, error) {
		updated, err := s.products.UpdateByID(id, name, qty, price)
		if err != nil {
			return ProductResponse{}, err
		}
		s.log.Info().Int("id", updated.ID).Msg("product updated")
		return toProductResponse(updated, s.products.LowStockThreshold()), nil
	})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /products/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	if err := s.products.DeleteByID(id); err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.log.Info().Int("id", id).Msg("product deleted")
	w.WriteHeader(http.StatusNoContent)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /products/{id} [get]
// @Security BearerAuth
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(product, s.products.LowStockThreshold()))
}

// GetProductsHandler godoc
// @Summary List, filter and paginate products
// @Description Products are returned in insertion order
// @Tags products
// @Produce json
// @Param name query string false "Filter by name"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minQty query int false "Minimum quantity"
// @Param maxQty query int false "Maximum quantity"
// @Param lowStock query bool false "Only products at or below the threshold"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /products [get]
// @Security BearerAuth
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ProductFilter{
		Name:     q.Get("name"),
		LowStock: q.Get("lowStock") == "true",
	}

	var err error
	if filter.MinPrice, err = parseFloatPtr(q.Get("minPrice"), "minPrice"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxPrice, err = parseFloatPtr(q.Get("maxPrice"), "maxPrice"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MinQty, err = parseIntPtr(q.Get("minQty"), "minQty"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxQty, err = parseIntPtr(q.Get("maxQty"), "maxQty"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Offset, err = parseIntPtr(q.Get("offset"), "offset"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Limit, err = parseIntPtr(q.Get("limit"), "limit"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		s.respondError(w, http.StatusBadRequest, "limit must be greater than zero")
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		s.respondError(w, http.StatusBadRequest, "offset must be zero or positive")
		return
	}

	products, total := s.products.Filter(filter)
	threshold := s.products.LowStockThreshold()

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total, Threshold: threshold},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p, threshold)
	}
	s.respond(w, http.StatusOK, resp)
}
