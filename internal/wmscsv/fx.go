package wmscsv

import (
	"github.com/saiteki-ops/saiteki/internal/wmscsv/repository"
	"github.com/saiteki-ops/saiteki/internal/wmscsv/service"
	"go.uber.org/fx"
)

var Module = fx.Module("wmscsv.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
