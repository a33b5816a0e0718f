package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/moodyssey/internal/buildinfo"
	"github.com/dmitrijs2005/moodyssey/internal/client/cli"
	"github.com/dmitrijs2005/moodyssey/internal/client/client"
	"github.com/dmitrijs2005/moodyssey/internal/client/config"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, "text", cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cli.NewApp(cfg, c, logger).Run(ctx)

}
