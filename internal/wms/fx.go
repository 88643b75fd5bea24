package wms

import (
	"github.com/saiteki-ops/saiteki/internal/wms/repository"
	"github.com/saiteki-ops/saiteki/internal/wms/service"
	"go.uber.org/fx"
)

var Module = fx.Module("wms.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
