package checkpoint

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cf_checkpoint_operations_total",
		Help: "Total number of checkpoint store operations",
	},
	[]string{"operation", "result"}, // "save", "load", "delete" / "ok", "miss", "error"
)
