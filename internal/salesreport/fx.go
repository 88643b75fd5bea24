package salesreport

import "go.uber.org/fx"

var Module = fx.Module("salesreport",
	fx.Provide(New),
)
