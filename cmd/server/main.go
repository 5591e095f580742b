package main

import (
	"log"

	_ "go.uber.org/automaxprocs"

	"slot_engine/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
