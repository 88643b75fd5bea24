package productcsv

import (
	"github.com/saiteki-ops/saiteki/internal/productcsv/repository"
	"github.com/saiteki-ops/saiteki/internal/productcsv/service"
	"go.uber.org/fx"
)

var Module = fx.Module("productcsv.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
