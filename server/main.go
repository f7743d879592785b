package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/wsserver"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	wsh := wsserver.NewWebSocketHandler(cfg)

	http.Handle("/ws", wsh)
	log.Printf("Server starting on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
