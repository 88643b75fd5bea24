package warehouse

import (
	"github.com/saiteki-ops/saiteki/internal/warehouse/repository"
	"github.com/saiteki-ops/saiteki/internal/warehouse/service"
	"go.uber.org/fx"
)

var Module = fx.Module("warehouse.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
