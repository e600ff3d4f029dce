package di

import (
	"go.uber.org/fx"

	"github.com/userhub/userhub/internal/app"
	"github.com/userhub/userhub/internal/config"
	"github.com/userhub/userhub/internal/logger"
	"github.com/userhub/userhub/internal/pkg/auth"
	"github.com/userhub/userhub/internal/server/http/handlers"
	"github.com/userhub/userhub/internal/server/http/router"
	"github.com/userhub/userhub/internal/storage/postgres"
	"github.com/userhub/userhub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.UserFacade) handlers.AccountFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
