package shipment

import (
	"github.com/saiteki-ops/saiteki/internal/shipment/repository"
	"github.com/saiteki-ops/saiteki/internal/shipment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("shipment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
