// Command ingest builds the vector index from the FAQ document. Run it once
// before starting the server, and again whenever the document changes. Each
// run fully replaces the stored index; do not run two ingests at once.
package main

import (
	"context"
	"log"

	"collegefaq/config"
	"collegefaq/pkg/kb/embedder"
	"collegefaq/pkg/kb/index"
	"collegefaq/pkg/kb/ingest"
	"collegefaq/pkg/kb/splitter"
)

func main() {
	cfg := config.Load()
	if cfg.EmbAPIKey == "" {
		log.Fatal("EMB_API_KEY (or OPENAI_API_KEY) must be set to ingest")
	}

	ix, err := index.Open(cfg.ChromaDir)
	if err != nil {
		log.Fatalf("open index: %v", err)
	}

	p := ingest.New(
		splitter.New(cfg.ChunkSize, cfg.ChunkOverlap),
		embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel),
		ix,
	)
	n, err := p.Run(context.Background(), cfg.DataPath)
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}
	log.Printf("[ingest] complete, chunks stored: %d", n)
}
