package repo

import (
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/shopspring/decimal"
)

// ProductStore is the in-memory inventory: an ordered list of products plus the
// low-stock threshold. Insertion order is kept, so the last product is the newest.
//
// All reads and writes are serialised on one mutex. Listeners are notified after
// the mutex is released, on the goroutine that performed the mutation.
type ProductStore struct {
	mu        sync.Mutex
	products  []models.Product
	threshold int
	listeners []Listener
	seq       uint64
}

// NewProductStore creates a store holding the sample products and the default threshold.
func NewProductStore() *ProductStore {
	return &ProductStore{
		products:  SampleProducts(),
		threshold: DefaultLowStockThreshold,
	}
}

// NewEmptyProductStore creates a store with no products and the default threshold.
func NewEmptyProductStore() *ProductStore {
	return &ProductStore{
		products:  []models.Product{},
		threshold: DefaultLowStockThreshold,
	}
}

// Subscribe registers a listener called after every successful mutation.
func (s *ProductStore) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Add validates the fields and appends a new product to the end of the list.
func (s *ProductStore) Add(id int, name string, quantity int, price float64) (models.Product, error) {
	if err := validateProduct(id, name, quantity, price); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	if s.indexOf(id) >= 0 {
		s.mu.Unlock()
		return models.Product{}, duplicateIDError()
	}
	product := models.Product{ID: id, Name: strings.TrimSpace(name), Quantity: quantity, Price: price}
	s.products = append(s.products, product)
	ev, listeners := s.eventLocked(EventProductAdded, id)
	s.mu.Unlock()

	notify(listeners, ev)
	return product, nil
}

// UpdateByID replaces name, quantity and price of an existing product. The ID and
// the position of the product in the list never change.
func (s *ProductStore) UpdateByID(id int, name string, quantity int, price float64) (models.Product, error) {
	if err := validateProduct(id, name, quantity, price); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Product{}, notFoundError(id)
	}
	s.products[i].Name = strings.TrimSpace(name)
	s.products[i].Quantity = quantity
	s.products[i].Price = price
	updated := s.products[i]
	ev, listeners := s.eventLocked(EventProductUpdated, id)
	s.mu.Unlock()

	notify(listeners, ev)
	return updated, nil
}

// DeleteByID removes the product with the given ID.
func (s *ProductStore) DeleteByID(id int) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return notFoundError(id)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	ev, listeners := s.eventLocked(EventProductDeleted, id)
	s.mu.Unlock()

	notify(listeners, ev)
	return nil
}

// ClearAll removes every product.
func (s *ProductStore) ClearAll() {
	s.mu.Lock()
	s.products = []models.Product{}
	ev, listeners := s.eventLocked(EventProductsCleared, 0)
	s.mu.Unlock()

	notify(listeners, ev)
}

// ResetSample replaces the list with the sample products.
func (s *ProductStore) ResetSample() {
	s.mu.Lock()
	s.products = SampleProducts()
	ev, listeners := s.eventLocked(EventProductsReset, 0)
	s.mu.Unlock()

	notify(listeners, ev)
}

// LowStockThreshold returns the current low-stock threshold.
func (s *ProductStore) LowStockThreshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// SetLowStockThreshold stores max(0, v) and returns the stored value.
func (s *ProductStore) SetLowStockThreshold(v int) int {
	s.mu.Lock()
	s.threshold = max(0, v)
	stored := s.threshold
	ev, listeners := s.eventLocked(EventThresholdChanged, 0)
	s.mu.Unlock()

	notify(listeners, ev)
	return stored
}

// GetAll returns a copy of the products in list order.
func (s *ProductStore) GetAll() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID retrieves a product by its ID.
func (s *ProductStore) GetByID(id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i], nil
	}
	return models.Product{}, notFoundError(id)
}

// TotalCount returns the number of products.
func (s *ProductStore) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// LowStockCount returns how many products have a quantity at or below the threshold.
func (s *ProductStore) LowStockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lowStockLocked())
}

// StockValue returns the sum of quantity*price over all products.
func (s *ProductStore) StockValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stockValue(s.products)
}

// NewestItemName returns the name of the last product, or "-" when the store is empty.
func (s *ProductStore) NewestItemName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newestLocked()
}

// LowStockReport lists the products at or below the threshold, in list order.
func (s *ProductStore) LowStockReport() LowStockReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newLowStockReport(s.threshold, s.lowStockLocked())
}

// GetDashboardMetrics implements MetricsRepository.
func (s *ProductStore) GetDashboardMetrics() (Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metricsLocked(), nil
}

func matchesFilter(p models.Product, pf ProductFilter, threshold int) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinQty != nil && p.Quantity < *pf.MinQty {
		return false
	}
	if pf.MaxQty != nil && p.Quantity > *pf.MaxQty {
		return false
	}
	if pf.LowStock && !p.IsLowStock(threshold) {
		return false
	}
	return true
}

// Filter returns the page of products matching pf and the total number of matches.
func (s *ProductStore) Filter(pf ProductFilter) ([]models.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := []models.Product{}
	for _, p := range s.products {
		if matchesFilter(p, pf, s.threshold) {
			filtered = append(filtered, p)
		}
	}

	// If offset is greater than the number of filtered products, return empty slice
	if pf.Offset != nil && *pf.Offset > len(filtered) {
		return []models.Product{}, len(filtered)
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (s *ProductStore) indexOf(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *ProductStore) lowStockLocked() []models.Product {
	low := []models.Product{}
	for _, p := range s.products {
		if p.IsLowStock(s.threshold) {
			low = append(low, p)
		}
	}
	return low
}

func (s *ProductStore) newestLocked() string {
	if len(s.products) == 0 {
		return NewestItemPlaceholder
	}
	return s.products[len(s.products)-1].Name
}

func (s *ProductStore) metricsLocked() Metrics {
	return Metrics{
		TotalProducts: len(s.products),
		LowStockCount: len(s.lowStockLocked()),
		StockValue:    stockValue(s.products),
		NewestItem:    s.newestLocked(),
		Threshold:     s.threshold,
	}
}

func (s *ProductStore) eventLocked(kind EventKind, productID int) (Event, []Listener) {
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.seq++
	return Event{
		Seq:       s.seq,
		Kind:      kind,
		ProductID: productID,
		Metrics:   s.metricsLocked(),
		At:        time.Now().UTC(),
	}, listeners
}

func notify(listeners []Listener, ev Event) {
	for _, l := range listeners {
		l(ev)
	}
}

// stockValue sums quantity*price in decimal so that sums of prices like 1.5 and
// 0.1 come out exact before the final conversion.
func stockValue(products []models.Product) float64 {
	total := decimal.Zero
	for _, p := range products {
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}
