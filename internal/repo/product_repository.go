package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Add(id int, name string, quantity int, price float64) (models.Product, error)
	UpdateByID(id int, name string, quantity int, price float64) (models.Product, error)
	DeleteByID(id int) error
	ClearAll()
	ResetSample()

	GetAll() []models.Product
	GetByID(id int) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int)

	LowStockThreshold() int
	SetLowStockThreshold(v int) int
	LowStockReport() LowStockReport
}
