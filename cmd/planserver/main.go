// Command planserver serves configuration spaces and route planning over
// HTTP. Settings come from the environment (see internal/config), optionally
// seeded from a .env file in the working directory.
package main

import (
	"flag"
	"log"

	"github.com/katalvlaran/gridplan/internal/config"
	"github.com/katalvlaran/gridplan/internal/server"
)

func main() {
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if !loaded {
		log.Println("No .env file found, using default environment variables")
	}

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.Uint64Var(&cfg.MaxCells, "max-cells", cfg.MaxCells, "largest width*height accepted")
	flag.Parse()

	log.Printf("Default planner: %s, cell limit: %d", cfg.Planner, cfg.MaxCells)
	if err = server.New(cfg).Run(); err != nil {
		log.Fatalf("ERROR: server stopped: %v", err)
	}
}
