// Package metrics defines the custom Prometheus metrics of the hours
// service. It is the single source of truth for metric names, labels,
// and help strings; everything registers with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "uren"

// HoursSubmittedTotal counts successful hour submissions.
var HoursSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hours_submitted_total",
		Help:      "Total number of hour values written through the upsert path.",
	},
)

// ApprovedOverwritesTotal counts submissions that overwrote the hours
// of an entry that was already approved.
var ApprovedOverwritesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approved_overwrites_total",
		Help:      "Total number of hour submissions that changed an already approved entry.",
	},
)

// EntriesApprovedTotal counts time entries transitioned from pending
// to approved.
var EntriesApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_approved_total",
		Help:      "Total number of time entries bulk-approved.",
	},
)

// ReportsGeneratedTotal counts aggregation requests per scope kind.
// Label:
//   - scope: "vandaag", "week", or "maand"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports aggregated, by scope kind.",
	},
	[]string{"scope"},
)
