package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(func() *ImportMetrics {
		return New(prometheus.DefaultRegisterer)
	}),
)
