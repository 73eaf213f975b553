package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cf_pagination_pages_total",
			Help: "Total number of pages fetched by endpoint",
		},
		[]string{"endpoint"},
	)

	itemsYielded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cf_pagination_items_total",
			Help: "Total number of records buffered from fetched pages by endpoint",
		},
		[]string{"endpoint"},
	)

	protocolViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cf_pagination_protocol_violations_total",
			Help: "Pages whose descriptor contradicted the request, by kind",
		},
		[]string{"kind"},
	)
)
