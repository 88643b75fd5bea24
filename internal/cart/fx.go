package cart

import (
	"github.com/saiteki-ops/saiteki/internal/cart/repository"
	"github.com/saiteki-ops/saiteki/internal/cart/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cart.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
