// Package metrics provides observability for the purchase module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks purchase ledger activity.
type Metrics struct {
	PurchasesRecorded prometheus.Counter
}

// New creates a Metrics instance with all purchase module metrics registered.
func New() *Metrics {
	return &Metrics{
		PurchasesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursebay_purchases_recorded_total",
			Help: "Total number of purchases recorded",
		}),
	}
}

// IncrementPurchaseRecorded records a successful purchase.
func (m *Metrics) IncrementPurchaseRecorded() { m.PurchasesRecorded.Inc() }
