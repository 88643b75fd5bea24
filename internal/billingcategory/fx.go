package billingcategory

import (
	"github.com/saiteki-ops/saiteki/internal/billingcategory/repository"
	"github.com/saiteki-ops/saiteki/internal/billingcategory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billingcategory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
