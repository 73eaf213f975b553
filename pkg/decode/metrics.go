package decode

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cf_decode_errors_total",
			Help: "Total number of payloads that failed to decode, by compatibility mode",
		},
		[]string{"mode"},
	)

	residualFields = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cf_decode_residual_fields_total",
			Help: "Total number of unknown members captured by lenient decoding",
		},
	)

	unknownVariants = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cf_decode_unknown_variants_total",
			Help: "Total number of unknown enum values mapped to the Unknown variant",
		},
	)
)
