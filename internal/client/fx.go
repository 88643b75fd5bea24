package client

import (
	"github.com/saiteki-ops/saiteki/internal/client/repository"
	"github.com/saiteki-ops/saiteki/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
