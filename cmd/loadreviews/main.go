package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/pkg/config"
	"github.com/TFMV/SentimentSuite/pkg/db"
	"github.com/TFMV/SentimentSuite/pkg/utils"
)

// corpusSource feeds validated reviews to pgx CopyFrom.
type corpusSource struct {
	docs []corpus.Document
	idx  int
}

func (s *corpusSource) Next() bool {
	s.idx++
	return s.idx <= len(s.docs)
}

func (s *corpusSource) Values() ([]any, error) {
	doc := s.docs[s.idx-1]
	id := doc.AuxID
	if id == "" {
		id = strconv.Itoa(doc.ID)
	}
	return []any{id, doc.Text, doc.Label}, nil
}

func (s *corpusSource) Err() error { return nil }

func main() {
	filePath := flag.String("file", "", "path to the pipe-delimited review file")
	table := flag.String("table", "", "override the target table from the config")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	utils.InitLogger(*verbose)

	if *filePath == "" {
		log.Fatalf("A review file is required, pass -file")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *table == "" {
		*table = cfg.DBCreds.LoadTable
	}
	if *table == "" {
		log.Fatalf("No target table, set load_table in the config or pass -table")
	}

	// Validate the whole file before touching the database, so a bad
	// row aborts the load instead of leaving a partial table.
	reviews, err := corpus.Load(*filePath, corpus.LoadOptions{
		TextColumn:  cfg.Pipeline.TextColumn,
		LabelColumn: cfg.Pipeline.LabelColumn,
		IDColumn:    cfg.Pipeline.IDColumn,
	})
	if err != nil {
		log.Fatalf("Failed to load reviews: %v", err)
	}

	start := time.Now()
	ctx := context.Background()

	pool, err := db.NewConnection(ctx, db.DBCreds{
		Host:     cfg.DBCreds.Host,
		Port:     cfg.DBCreds.Port,
		Username: cfg.DBCreds.Username,
		Password: cfg.DBCreds.Password,
		Database: cfg.DBCreds.Database,
	})
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Fatalf("Unable to acquire a connection: %v", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (reviewid TEXT, review TEXT, sentiment TEXT)`, *table))
	if err != nil {
		log.Fatalf("Unable to create table %s: %v", *table, err)
	}

	copyCount, err := conn.Conn().CopyFrom(
		ctx,
		pgx.Identifier{*table},
		[]string{"reviewid", "review", "sentiment"},
		&corpusSource{docs: reviews.Docs},
	)
	if err != nil {
		log.Fatalf("Error copying reviews to database: %v", err)
	}

	log.Infof("copied %d reviews to %s in %v", copyCount, *table, time.Since(start))
}
