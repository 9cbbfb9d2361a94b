package main

import (
	"log"
	"net/http"
)

func main() {
	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	store := OpenStore(cfg.DataDir)

	gen, err := NewTextGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}

	StartSummaryScheduler(cfg, db, store)

	srv := NewServer(cfg, NewRewriter(gen), NewAnalyzer(gen), store, db)
	log.Printf("Starting rewrite service on %s (provider: %s)", cfg.ListenAddr, cfg.LLMProvider)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Routes()); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
