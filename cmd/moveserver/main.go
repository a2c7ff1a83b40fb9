package main

import (
	"fmt"
	"os"

	"chess-moves/internal/api"
	"chess-moves/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		fmt.Fprintf(os.Stderr, "config: unknown gin mode %q\n", cfg.GinMode)
		os.Exit(2)
	}

	r := api.NewRouter(api.NewMoveApi(cfg.Verify))
	if err := r.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
