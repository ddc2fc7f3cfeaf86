package main

import (
	"github.com/avGenie/go-order-lifecycle/internal/app/config"
	server "github.com/avGenie/go-order-lifecycle/internal/app/controller/http/server"
	"github.com/avGenie/go-order-lifecycle/internal/app/logger"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	store, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer store.Close()

	srv, err := server.New(config, store)
	if err != nil {
		zap.L().Fatal("error while creating server", zap.Error(err))
	}

	srv.StartHTTPServer()
}
