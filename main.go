package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Rakhulsr/go-storefront/app/cmd"
	"github.com/Rakhulsr/go-storefront/app/configs"
	"github.com/Rakhulsr/go-storefront/app/routes"
	"github.com/Rakhulsr/go-storefront/app/utils/logger"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	if err := logger.Init(env.LogLevel, env.AppEnv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) > 1 {
		if err := cmd.RunCli(env, os.Args); err != nil {
			zap.L().Fatal("command failed", zap.Error(err))
		}
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		zap.L().Fatal("DB connection failed", zap.Error(err))
	}
	zap.L().Info("✅ Database connected.")

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		zap.L().Fatal("Session keys are not configured", zap.Error(err))
	}

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.L().Info("🚀 Server starting", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
