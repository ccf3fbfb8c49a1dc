package main

import (
	"os"

	"github.com/comptoir-pos/backend/internal/app"
	config "github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/pkg/logger"
)

//	@title			Comptoir POS API
//	@version		1.0
//	@description	Кассовый бэкенд кафе: каталог, корзина, заказы, кухня, дашборд
//	@host			localhost:8080
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.New(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
