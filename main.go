package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDatabase(cfg)
	if err != nil {
		logrus.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.Migrate(db); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedGroups(db); err != nil {
		logrus.Fatalf("seed groups failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithFields(logrus.Fields{
		"addr":          addr,
		"driver":        cfg.DBDriver,
		"publicCatalog": cfg.PublicCatalog,
	}).Info("server starting")
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
