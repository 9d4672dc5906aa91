package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"taskmanager/internal/config"
	"taskmanager/internal/db"
	"taskmanager/internal/repository"
)

// initdb creates the tasks table against whichever database the environment
// points at, without starting the server. With -check it only pings.
func main() {
	check := flag.Bool("check", false, "ping the database and exit")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewProvider(cfg).NewPool(ctx)
	if err != nil {
		log.Fatalf("database bootstrap failed: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping failed: %v", err)
	}
	if *check {
		fmt.Println("database reachable")
		return
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("tasks table ready")
}
