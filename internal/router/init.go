package router

import (
	"github.com/devsenior/property-service/internal/application"
	"github.com/devsenior/property-service/internal/container"
	pginfra "github.com/devsenior/property-service/internal/infrastructure/postgres"
	handlers "github.com/devsenior/property-service/internal/interface/http"
	"github.com/devsenior/property-service/internal/router/modules"
)

func buildPropertyModule() *modules.PropertyModule {
	cfg := container.GetConfig()
	repo := pginfra.NewPropertyRepository(container.GetPGPool())

	service := application.NewPropertyService(
		repo,
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		cfg.ESPropertiesIndex,
		container.GetRabbitPub(),
		container.GetGCS(),
		cfg.GCSBucket,
	)

	handler := handlers.NewPropertyHandler(service, container.GetLogger())
	return modules.NewPropertyModule(handler)
}

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := application.NewAuthService(repo, container.GetLogger())
	handler := handlers.NewAuthHandler(service, container.GetLogger())
	return modules.NewAuthModule(handler)
}

// InitModules wires every application module into the router registry.
// Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildPropertyModule())
	r.Add(buildAuthModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
