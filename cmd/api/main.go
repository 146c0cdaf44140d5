package main

import (
	"github.com/joho/godotenv"

	"godescribe/internal"
	"godescribe/internal/config"
	"godescribe/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := internal.NewDefaultLogger()
	cfg, err := config.Load()
	if err != nil {
		log.Error("loading configuration: %v", err)
		return
	}

	app, err := ui.NewApp(cfg, log)
	if err != nil {
		log.Error("initializing server: %v", err)
		return
	}
	if err := app.Serve(); err != nil {
		log.Error("server stopped: %v", err)
	}
}
