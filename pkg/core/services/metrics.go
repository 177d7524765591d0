package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "savealife_notifications_total",
		Help: "Notifications dispatched, by type.",
	}, []string{"type"})

	statusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "savealife_status_updates_total",
		Help: "Status updates applied to requests and appointments, by record kind and new status.",
	}, []string{"kind", "status"})
)
