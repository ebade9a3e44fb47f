package main

import (
	"fmt"

	"site-tracker/internal/config"
	"site-tracker/internal/database"
	"site-tracker/internal/handlers"
	"site-tracker/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDriver, cfg.DBDSN)
	handlers.UploadDir = cfg.UploadDir

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
