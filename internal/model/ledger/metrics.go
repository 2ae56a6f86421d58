package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opSetBudget = "set_budget"
	opAdd       = "add"
	opRemove    = "remove"
)

var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "budget",
			Subsystem: "ledger",
			Name:      "mutations_total",
		},
		[]string{"op"},
	)
	totalGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "budget",
		Subsystem: "ledger",
		Name:      "total",
	})
	budgetGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "budget",
		Subsystem: "ledger",
		Name:      "budget",
	})
)

func observeMutation(op string, l *Ledger) {
	mutationsTotal.WithLabelValues(op).Inc()
	totalGauge.Set(l.total)
	budgetGauge.Set(l.budget)
}
