package main

import (
	"context"
	"log"

	"github.com/dalemusser/waffle/app"
	"github.com/dspcoder123/admin-panel/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
