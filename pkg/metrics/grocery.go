package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the purchase ingestion handler
	PurchaseCreateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "grocery_purchase_create_latency_seconds",
		Help:    "Latency of the purchase creation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total purchases recorded
	PurchaseCreateTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grocery_purchase_create_total",
		Help: "Total number of purchases recorded",
	})

	// Products created lazily by the find-or-create path
	ProductAutoCreateTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grocery_product_autocreate_total",
		Help: "Products created on first purchase of an unseen name",
	})

	TopProductRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "grocery_top_product_requests_total",
		Help: "Total number of top-product statistics requests",
	})
)

func Init() {
	prometheus.MustRegister(
		PurchaseCreateLatency,
		PurchaseCreateTotal,
		ProductAutoCreateTotal,
		TopProductRequests,
	)
}
