package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/tgpolish/internal/ctl"
)

func main() {

	ctx := context.Background()
	cfg := ctl.LoadConfig()
	app, err := ctl.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
