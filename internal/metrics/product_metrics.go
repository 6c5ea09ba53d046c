package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var (
	// ProductsAdded counts products added to the store.
	ProductsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_added_total",
		Help: "The total number of products added",
	})

	// ProductsUpdated counts in-place product updates.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted counts products removed one at a time.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_deleted_total",
		Help: "The total number of products deleted",
	})

	// StoreResets counts clear-all and reset-sample operations, by kind.
	StoreResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_store_resets_total",
		Help: "The total number of store-wide clears and sample resets",
	}, []string{"kind"})

	Products = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_products",
		Help: "Number of products currently in the store",
	})

	LowStockProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_low_stock_products",
		Help: "Number of products at or below the low-stock threshold",
	})

	StockValue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_stock_value",
		Help: "Sum of quantity times price over all products",
	})

	LowStockThreshold = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_low_stock_threshold",
		Help: "Current low-stock threshold",
	})
)

// SetGauges copies dashboard figures into the gauges.
func SetGauges(m repo.Metrics) {
	Products.Set(float64(m.TotalProducts))
	LowStockProducts.Set(float64(m.LowStockCount))
	StockValue.Set(m.StockValue)
	LowStockThreshold.Set(float64(m.Threshold))
}

// Recorder keeps the counters and gauges current from the events of one store.
// Gauges only move forward: an event older than the last one applied is counted
// but its snapshot is dropped.
type Recorder struct {
	mu      sync.Mutex
	lastSeq uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record is a repo.Listener.
func (r *Recorder) Record(ev repo.Event) {
	switch ev.Kind {
	case repo.EventProductAdded:
		ProductsAdded.Inc()
	case repo.EventProductUpdated:
		ProductsUpdated.Inc()
	case repo.EventProductDeleted:
		ProductsDeleted.Inc()
	case repo.EventProductsCleared, repo.EventProductsReset:
		StoreResets.WithLabelValues(string(ev.Kind)).Inc()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ev.Seq <= r.lastSeq {
		return
	}
	r.lastSeq = ev.Seq
	SetGauges(ev.Metrics)
}
