package handlers

import (
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

type ProductRequest struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ProductResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	LowStock bool    `json:"low_stock"`
}

func toProductResponse(p models.Product, threshold int) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
		LowStock: p.IsLowStock(threshold),
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
	Threshold  int `json:"low_stock_threshold"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

type ThresholdRequest struct {
	Threshold *int `json:"threshold"`
}

type ThresholdResponse struct {
	Threshold int `json:"threshold"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type DashboardResponse = repo.Metrics

type ImportRowError struct {
	Row         int    `json:"row"`
	Description string `json:"description"`
}

type ImportProductsResult struct {
	ImportedProductsCount int              `json:"imported"`
	Errors                []ImportRowError `json:"errors"`
}
