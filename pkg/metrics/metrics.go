package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Recommendations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidding",
		Name:      "recommendations_total",
		Help:      "Vacancy recommendations broken down by outcome (winner or none).",
	}, []string{"outcome"})

	BulkBids = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bidding",
		Name:      "bulk_bids_total",
		Help:      "Bids written by bulk apply requests.",
	})

	AuditEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidding",
		Name:      "audit_entries_total",
		Help:      "Audit log entries appended, by action.",
	}, []string{"action"})

	AuditResets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bidding",
		Name:      "audit_resets_total",
		Help:      "Times an unreadable persisted audit log was reset to empty.",
	})
)
