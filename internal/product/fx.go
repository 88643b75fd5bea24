package product

import (
	"github.com/saiteki-ops/saiteki/internal/product/repository"
	"github.com/saiteki-ops/saiteki/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
