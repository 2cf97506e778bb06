// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/evaluate"
	"github.com/TFMV/SentimentSuite/internal/profile"
)

const tokenStatBatchSize = 1000

// EnsureSchema creates the result tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id BIGSERIAL PRIMARY KEY,
			description TEXT NOT NULL,
			strategy TEXT NOT NULL,
			seed BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS run_metrics (
			run_id BIGINT NOT NULL REFERENCES runs(run_id),
			classifier TEXT NOT NULL,
			positive_class TEXT NOT NULL,
			tp INT NOT NULL,
			fp INT NOT NULL,
			tn INT NOT NULL,
			fn INT NOT NULL,
			accuracy DOUBLE PRECISION,
			"precision" DOUBLE PRECISION,
			recall DOUBLE PRECISION,
			f1 DOUBLE PRECISION,
			sensitivity DOUBLE PRECISION,
			specificity DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS token_stats (
			run_id BIGINT NOT NULL REFERENCES runs(run_id),
			token TEXT NOT NULL,
			total INT NOT NULL,
			positive INT NOT NULL,
			negative INT NOT NULL,
			log_ratio DOUBLE PRECISION
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %v", err)
		}
	}
	return nil
}

// LoadReviews reads a labeled review table with reviewid, review and
// sentiment columns. Sentiments outside positive/negative fail the
// load.
func LoadReviews(ctx context.Context, pool *pgxpool.Pool, table string) (*corpus.Corpus, error) {
	rows, err := pool.Query(ctx, fmt.Sprintf(
		`SELECT reviewid, review, sentiment FROM %s ORDER BY reviewid`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %v", table, err)
	}
	defer rows.Close()

	c := &corpus.Corpus{}
	id := 0
	for rows.Next() {
		var aux, text, label string
		if err := rows.Scan(&aux, &text, &label); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		label = strings.ToLower(strings.TrimSpace(label))
		if label != corpus.LabelPositive && label != corpus.LabelNegative {
			return nil, fmt.Errorf("review %s has unknown sentiment %q", aux, label)
		}
		id++
		c.Docs = append(c.Docs, corpus.Document{ID: id, Text: text, Label: label, AuxID: aux})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %v", err)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("table %s has no reviews", table)
	}
	return c, nil
}

// CreateRun records a pipeline run and returns its id.
func CreateRun(ctx context.Context, pool *pgxpool.Pool, description, strategy string, seed int64) (int64, error) {
	var runID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO runs (description, strategy, seed) VALUES ($1, $2, $3) RETURNING run_id`,
		description, strategy, seed).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %v", err)
	}
	return runID, nil
}

// SaveMetrics stores one row per classifier result. NaN metrics become
// NULL; Postgres keeps infinities natively so log-scale values survive
// as they are.
func SaveMetrics(ctx context.Context, pool *pgxpool.Pool, runID int64, results []*evaluate.Result) error {
	for _, r := range results {
		_, err := pool.Exec(ctx, `INSERT INTO run_metrics
			(run_id, classifier, positive_class, tp, fp, tn, fn,
			 accuracy, "precision", recall, f1, sensitivity, specificity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			runID, r.Classifier, r.Positive, r.TP, r.FP, r.TN, r.FN,
			nullable(r.Classifier, "accuracy", r.Accuracy),
			nullable(r.Classifier, "precision", r.Precision),
			nullable(r.Classifier, "recall", r.Recall),
			nullable(r.Classifier, "f1", r.F1),
			nullable(r.Classifier, "sensitivity", r.Sensitivity),
			nullable(r.Classifier, "specificity", r.Specificity))
		if err != nil {
			return fmt.Errorf("failed to save metrics for %s: %v", r.Classifier, err)
		}
	}
	return nil
}

// SaveTokenStats stores the token profile in batches inside one
// transaction.
func SaveTokenStats(ctx context.Context, pool *pgxpool.Pool, runID int64, stats []profile.TokenStat) error {
	if len(stats) == 0 {
		return nil
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	for start := 0; start < len(stats); start += tokenStatBatchSize {
		end := start + tokenStatBatchSize
		if end > len(stats) {
			end = len(stats)
		}
		batch := &pgx.Batch{}
		for _, s := range stats[start:end] {
			batch.Queue(`INSERT INTO token_stats (run_id, token, total, positive, negative, log_ratio)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				runID, s.Token, s.Count, s.Positive, s.Negative,
				nullable("profile", s.Token, s.LogRatio))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert token stats: %v", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit token stats: %v", err)
	}
	return nil
}

func nullable(scope, name string, v float64) any {
	if math.IsNaN(v) {
		log.Debugf("%s: %s is NaN, storing NULL", scope, name)
		return nil
	}
	return v
}
