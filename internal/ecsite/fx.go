package ecsite

import (
	"github.com/saiteki-ops/saiteki/internal/ecsite/repository"
	"github.com/saiteki-ops/saiteki/internal/ecsite/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ecsite.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
