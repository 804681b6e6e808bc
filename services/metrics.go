package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pugorugh_decisions_total",
		Help: "Decisions recorded, by status.",
	}, []string{"status"})

	queueNextTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pugorugh_queue_next_total",
		Help: "Next-dog lookups, by status filter and result (hit or empty).",
	}, []string{"status", "result"})

	ledgerResetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pugorugh_ledger_resets_total",
		Help: "Preference writes that cleared a user's decision ledger.",
	})

	// PrunedDecisionsTotal is incremented by the ledger prune worker.
	PrunedDecisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pugorugh_pruned_decisions_total",
		Help: "Ledger rows removed because their dog left the catalog.",
	})
)
