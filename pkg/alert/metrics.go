package alert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the outcome label
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

var alertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "savealife_alerts_total",
	Help: "Alerts handed to each sink, by notification type and outcome.",
}, []string{"sink", "type", "outcome"})
