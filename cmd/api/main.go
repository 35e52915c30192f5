// @title Serenity API
// @description API for wellness companion app "Serenity"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/limbo/serenity/internal/api"
	"github.com/limbo/serenity/internal/bootstrap"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/cleanup"
	"github.com/limbo/serenity/pkg/config"
	jwtservice "github.com/limbo/serenity/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := bootstrap.SetupLogger(cfg)
	defer cleanup.CleanUp()

	store, err := repository.NewStore(bootstrap.StoreOptions(cfg))
	if err != nil {
		log.Fatal(err.Error())
	}
	userService := service.NewUserService(repository.NewAccountsRepo(store), bootstrap.Clock(cfg))
	serv := api.New(&api.ServicesList{
		UserService: userService,
		Workspaces:  bootstrap.Workspaces(cfg, store, logger),
		JwtService:  jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL")),
		Store:       store,
		AppVersion:  cfg.GetString("APP_VERSION"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetString("API_ADDRESS")); err != nil {
		logger.Error("server error: " + err.Error())
	}
}
