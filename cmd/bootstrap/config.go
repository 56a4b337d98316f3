package bootstrap

import (
	"zerowaste-exchange/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.MarkdownConfig { return cfg.Markdown },
		func(cfg config.Config) config.PickupConfig { return cfg.Pickup },
	),
)
