package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/TFMV/SentimentSuite/internal/classify"
	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/evaluate"
	"github.com/TFMV/SentimentSuite/internal/features"
	"github.com/TFMV/SentimentSuite/internal/profile"
	"github.com/TFMV/SentimentSuite/internal/split"
	"github.com/TFMV/SentimentSuite/internal/store"
	"github.com/TFMV/SentimentSuite/pkg/config"
	"github.com/TFMV/SentimentSuite/pkg/db"
	"github.com/TFMV/SentimentSuite/pkg/pca"
	"github.com/TFMV/SentimentSuite/pkg/utils"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML configuration")
	dataPath := flag.String("data", "", "override the labeled review file")
	strategy := flag.String("strategy", "", "feature strategy, tidy or full")
	sample := flag.Float64("sample", 0, "override the sample fraction")
	seed := flag.Int64("seed", 0, "override the random seed")
	enableKNN := flag.Bool("knn", false, "enable the knn classifier search")
	project := flag.String("project", "", "write a two-component PCA document map to this CSV file")
	saveProfile := flag.String("save-profile", "", "write the token profile to this file")
	runDesc := flag.String("run-desc", "ad hoc run", "description recorded with the run")
	useDB := flag.Bool("db", false, "read reviews from and write results to Postgres")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	utils.InitLogger(*verbose)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Pipeline.DataPath = *dataPath
		case "strategy":
			cfg.Pipeline.Strategy = *strategy
		case "sample":
			cfg.Pipeline.SampleFraction = *sample
		case "seed":
			cfg.Pipeline.Seed = *seed
		case "knn":
			cfg.Pipeline.EnableKNN = *enableKNN
		}
	})
	if err := cfg.Pipeline.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	if *useDB {
		pool, err = db.NewConnection(ctx, db.DBCreds{
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
	}

	var raw *corpus.Corpus
	if *useDB {
		raw, err = store.LoadReviews(ctx, pool, cfg.DBCreds.LoadTable)
	} else {
		raw, err = corpus.Load(cfg.Pipeline.DataPath, corpus.LoadOptions{
			TextColumn:  cfg.Pipeline.TextColumn,
			LabelColumn: cfg.Pipeline.LabelColumn,
			IDColumn:    cfg.Pipeline.IDColumn,
		})
	}
	if err != nil {
		log.Fatalf("Unable to load reviews: %v", err)
	}

	cleaned := corpus.Clean(raw)
	counts := cleaned.CountByLabel()
	log.Infof("loaded %d reviews: %d positive, %d negative",
		cleaned.Len(), counts[corpus.LabelPositive], counts[corpus.LabelNegative])

	sampled, err := corpus.Sample(cleaned, cfg.Pipeline.SampleFraction, cfg.Pipeline.Seed)
	if err != nil {
		log.Fatalf("Unable to sample corpus: %v", err)
	}
	if sampled.Len() == 0 {
		log.Fatalf("Sample fraction %v leaves no documents, raise it or load more reviews",
			cfg.Pipeline.SampleFraction)
	}
	log.Infof("sampled %d of %d reviews (fraction %v, seed %d)",
		sampled.Len(), cleaned.Len(), cfg.Pipeline.SampleFraction, cfg.Pipeline.Seed)

	prof, err := profile.Build(sampled, 1)
	if err != nil {
		log.Fatalf("Unable to profile tokens: %v", err)
	}
	log.Infof("profiled %d distinct tokens across %d documents", len(prof.Stats), sampled.Len())
	reportProfile(sampled, prof, cfg.Pipeline)
	if *saveProfile != "" {
		if err := profile.SaveProfile(prof, *saveProfile); err != nil {
			log.Fatalf("Unable to save profile: %v", err)
		}
		log.Infof("wrote token profile to %s", *saveProfile)
	}

	builder, err := features.NewBuilder(cfg.Pipeline, prof)
	if err != nil {
		log.Fatalf("Unable to build feature strategy: %v", err)
	}
	m, err := builder.Build(sampled)
	if err != nil {
		log.Fatalf("Unable to build features: %v", err)
	}
	rows, cols := m.X.Dims()
	log.Infof("%s features: %d documents x %d terms", builder.Name(), rows, cols)

	if *project != "" {
		if err := writeProjection(m, *project); err != nil {
			log.Errorf("Unable to project features: %v", err)
		}
	}

	parts, err := split.Partition(m, sampled.Labels(), cfg.Pipeline.SplitRatio, cfg.Pipeline.Seed)
	if err != nil {
		log.Fatalf("Unable to split documents: %v", err)
	}
	log.Infof("split: %d train, %d test (ratio %v)",
		parts.Train.Len(), parts.Test.Len(), cfg.Pipeline.SplitRatio)

	var results []*evaluate.Result
	for _, classifier := range classify.Suite(cfg.Pipeline, sampled.Texts()) {
		if err := classifier.Fit(parts.Train); err != nil {
			log.Errorf("Unable to fit %s: %v", classifier.Name(), err)
			continue
		}
		predicted, err := classifier.Predict(parts.Test)
		if err != nil {
			log.Errorf("Unable to predict with %s: %v", classifier.Name(), err)
			continue
		}
		result, err := evaluate.Evaluate(classifier.Name(), parts.Test.Y, predicted,
			parts.Test.Classes, corpus.LabelPositive)
		if err != nil {
			log.Errorf("Unable to evaluate %s: %v", classifier.Name(), err)
			continue
		}
		log.Info(result.String())
		results = append(results, result)
	}
	if len(results) == 0 {
		log.Fatalf("No classifier produced a result")
	}

	if *useDB {
		if err := store.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Unable to prepare result tables: %v", err)
		}
		runID, err := store.CreateRun(ctx, pool, *runDesc, builder.Name(), cfg.Pipeline.Seed)
		if err != nil {
			log.Fatalf("Unable to record run: %v", err)
		}
		if err := store.SaveMetrics(ctx, pool, runID, results); err != nil {
			log.Fatalf("Unable to save metrics: %v", err)
		}
		if err := store.SaveTokenStats(ctx, pool, runID, prof.Stats); err != nil {
			log.Fatalf("Unable to save token stats: %v", err)
		}
		log.Infof("saved run %d with %d classifier results and %d token stats",
			runID, len(results), len(prof.Stats))
	}
}

func reportProfile(c *corpus.Corpus, prof *profile.Profile, p config.Pipeline) {
	lengths, err := profile.Lengths(c)
	if err != nil {
		log.Errorf("Unable to summarize document lengths: %v", err)
	} else {
		log.Infof("document tokens: mean %.1f median %.1f sd %.1f min %.0f max %.0f",
			lengths.Mean, lengths.Median, lengths.StdDev, lengths.Min, lengths.Max)
	}

	if len(prof.Stats) == 0 {
		return
	}
	freq := prof.FrequencyFrame(10)
	if freq.Err != nil {
		log.Errorf("Unable to build frequency table: %v", freq.Err)
	} else {
		log.Infof("most frequent tokens:\n%v", freq)
	}
	polarity := prof.PolarityFrame(p.MinPolarizingCount, p.TopTerms)
	if polarity.Err != nil {
		log.Errorf("Unable to build polarity table: %v", polarity.Err)
	} else if polarity.Nrow() > 0 {
		log.Infof("most polarizing tokens:\n%v", polarity)
	} else {
		log.Debugf("no token reached %d occurrences, skipping polarity table", p.MinPolarizingCount)
	}

	bigrams, err := profile.Build(c, 2)
	if err != nil {
		log.Errorf("Unable to profile bigrams: %v", err)
		return
	}
	if len(bigrams.Stats) == 0 {
		return
	}
	freq = bigrams.FrequencyFrame(10)
	if freq.Err != nil {
		log.Errorf("Unable to build bigram table: %v", freq.Err)
	} else {
		log.Infof("most frequent bigrams:\n%v", freq)
	}
}

// writeProjection densifies the feature matrix, projects documents
// onto the two leading principal components, and writes one coordinate
// row per document.
func writeProjection(m *features.Matrix, path string) error {
	coords, err := pca.Project(m, 2)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create projection file: %v", err)
	}
	defer file.Close()

	rows, cols := coords.Dims()
	writer := csv.NewWriter(file)
	header := []string{"reviewid"}
	for j := 0; j < cols; j++ {
		header = append(header, fmt.Sprintf("pc%d", j+1))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("unable to write projection header: %v", err)
	}
	for i := 0; i < rows; i++ {
		record := make([]string, 0, cols+1)
		record = append(record, strconv.Itoa(m.DocIDs[i]))
		for j := 0; j < cols; j++ {
			record = append(record, strconv.FormatFloat(coords.At(i, j), 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("unable to write projection row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("unable to flush projection file: %v", err)
	}
	log.Infof("wrote %d document coordinates to %s", rows, path)
	return nil
}
