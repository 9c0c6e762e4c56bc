package services_test

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"complaint-triage/priority"
	"complaint-triage/repositories"
	"complaint-triage/runtime"
	"complaint-triage/sentiment"
	"complaint-triage/services"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTriageService_StoredPredictionSurvivesRetrain(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	complaints := repositories.NewComplaintRepository(db, log)
	registry := runtime.NewModelRegistry(repositories.NewSnapshotRepository(db, log), log)
	policy, err := priority.DefaultPolicy()
	req.NoError(err)
	engine, err := priority.NewEngine(policy)
	req.NoError(err)
	service := services.NewTriageService(log, registry, sentiment.NewAnalyzer(nil), engine, complaints, nil, nil, 0)

	// Given a complaint triaged by the seed model
	seed, err := ai.Train(ctx, ai.SeedCorpus, registry.NextVersion(), time.Now(), ai.DefaultTrainOptions)
	req.NoError(err)
	req.NoError(registry.Publish(ctx, seed))
	const text = "The package never arrived"
	submitted, err := service.SubmitComplaint(ctx, services.NewComplaint{Text: text})
	req.NoError(err)
	req.Equal(domain.Delivery, submitted.MLCategory)

	// When a newer model that disagrees with it is published
	relabeled := []domain.TrainingSample{
		{Text: "The package never arrived", Label: domain.Billing},
		{Text: "My package never arrived at all", Label: domain.Billing},
		{Text: "The product broke after one use", Label: domain.Quality},
		{Text: "The fabric is cheap and torn", Label: domain.Quality},
	}
	retrained, err := ai.Train(ctx, relabeled, registry.NextVersion(), time.Now(), ai.DefaultTrainOptions)
	req.NoError(err)
	req.NoError(registry.Publish(ctx, retrained))
	req.Equal(domain.Billing, service.Classify(text).Category)

	// Then the stored prediction is the one made at submission time
	fetched, err := service.GetComplaint(ctx, submitted.ID)
	req.NoError(err)
	req.Equal(submitted.MLCategory, fetched.MLCategory)
	req.InDelta(submitted.Confidence, fetched.Confidence, 1e-12)
	req.Equal(submitted.Category, fetched.Category)
}
