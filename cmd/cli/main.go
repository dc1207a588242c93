package main

import (
	"context"

	"github.com/shopkeeper/shopkeeper/internal/client/cli"
	"github.com/shopkeeper/shopkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
