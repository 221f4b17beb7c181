package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/vacancy-bidding-api/pkg/app"
	"github.com/arnavshah/vacancy-bidding-api/pkg/config"
	"github.com/arnavshah/vacancy-bidding-api/pkg/logger"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "vacancy-bidding-api")
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	a, err := app.New(cfg, zl)
	if err != nil {
		log.Fatalf("could not start: %v", err)
	}
	r = a.Router
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
