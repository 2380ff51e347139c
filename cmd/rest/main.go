package main

import (
	"context"
	"log"

	"ai-notebook-be/internal/bootstrap"
	"ai-notebook-be/internal/config"
	"ai-notebook-be/internal/server"
	"ai-notebook-be/internal/tracer"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// Background workers
	go container.WebSocketHub.Run()
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
