package main

import (
	"context"
	"log"

	"virtual-lawyer/config"
	"virtual-lawyer/repository"
)

func main() {
	if !config.LoadDotEnv() {
		log.Printf("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := repository.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.CreateSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	for _, name := range repository.SchemaObjects() {
		log.Printf("✓ %s", name)
	}
	log.Println("✅ Schema is up to date")
}
