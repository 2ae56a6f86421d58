package alert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var alertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "budget",
		Subsystem: "alert",
		Name:      "signals_total",
	},
	[]string{"signal"},
)

func observeSignal(s Signal) {
	alertsTotal.WithLabelValues(s.String()).Inc()
}
