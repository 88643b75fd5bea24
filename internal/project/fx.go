package project

import (
	"github.com/saiteki-ops/saiteki/internal/project/repository"
	"github.com/saiteki-ops/saiteki/internal/project/service"
	"go.uber.org/fx"
)

var Module = fx.Module("project.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
