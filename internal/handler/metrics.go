package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_generations_total",
			Help: "Total number of entity generation attempts by kind and status.",
		},
		[]string{"kind", "status"},
	)

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_verifications_total",
			Help: "Total number of token verification attempts by type and status.",
		},
		[]string{"type", "status"},
	)
)
