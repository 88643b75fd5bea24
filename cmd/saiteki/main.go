package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/config"
	"github.com/saiteki-ops/saiteki/internal/logger"
	"github.com/saiteki-ops/saiteki/internal/migration"
	"github.com/saiteki-ops/saiteki/internal/server"
	"github.com/saiteki-ops/saiteki/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
