package main

import (
	"bufio"
	"complaint-triage/domain"
	"complaint-triage/priority"
	"complaint-triage/repositories"
	"complaint-triage/runtime"
	"complaint-triage/runtime/workers"
	"complaint-triage/sentiment"
	"complaint-triage/services"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

const usage = `usage: triage <command> [flags] [args]

commands:
  classify <text>                      triage a text without storing it
  submit [-category c] [-by who] <text> triage and store a complaint
  ingest                               submit one complaint per stdin line
  feedback -id <uuid> (-correct | -category c)
  status -id <uuid> -set <status>
  list [-page n] [-per-page n]
  search [-limit n] <query>
  summary
  info
  retrain                              run a training cycle now
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.IndexFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() { _ = writer.Close() }()

	complaints := repositories.NewComplaintRepository(db, log)
	snapshots := repositories.NewSnapshotRepository(db, log)
	index := repositories.NewComplaintIndex(writer, log)

	// 3. Model
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := runtime.NewModelRegistry(snapshots, log)
	if err = registry.Load(ctx); err != nil {
		return err
	}
	coordinator := runtime.NewRetrainingCoordinator(log, complaints, registry, runtime.RetrainPolicy{
		MinFeedback:  config.RetrainMinFeedback,
		Every:        config.RetrainEvery,
		MinCorrected: config.MinCorrectedSamples,
		Timeout:      config.TrainingTimeout,
		Options:      runtime.DefaultRetrainPolicy.Options,
	})
	if _, err = coordinator.Bootstrap(ctx); err != nil {
		log.Error("Bootstrap training failed, serving in degraded mode", "error", err)
	}

	policy, err := priority.LoadPolicy(config.PriorityPolicyPath)
	if err != nil {
		return err
	}
	engine, err := priority.NewEngine(policy)
	if err != nil {
		return err
	}
	service := services.NewTriageService(log, registry, sentiment.NewAnalyzer(nil), engine,
		complaints, index, coordinator, config.DefaultPageSize)

	command, rest := args[0], args[1:]
	if command == "ingest" {
		pruner, err := runtime.NewSnapshotPruner(snapshots, config.SnapshotRetention, config.PruneSchedule, log)
		if err != nil {
			return err
		}
		sup := workers.NewSupervisor(log, config.RestartInterval)
		sup.Add(coordinator, pruner)
		done := make(chan struct{})
		go func() {
			sup.Run(ctx)
			close(done)
		}()
		err = ingest(ctx, service)
		stop()
		<-done
		return err
	}

	// One-shot commands run a queued retrain before exiting.
	defer coordinator.Drain(context.WithoutCancel(ctx))
	return dispatch(ctx, command, rest, service, coordinator)
}

func dispatch(ctx context.Context, command string, args []string, service *services.TriageService, coordinator *runtime.RetrainingCoordinator) error {
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	switch command {
	case "classify":
		if err := flags.Parse(args); err != nil {
			return err
		}
		text := strings.Join(flags.Args(), " ")
		prediction := service.Classify(text)
		mood := service.AnalyzeSentiment(text)
		decision := service.ComputePriority(text, mood.Label)
		fmt.Printf("%s %s (%.2f)\n", prediction.Category.Emoji(), paintCategory(prediction.Category), prediction.Confidence)
		fmt.Printf("%s %s (%.2f)\n", mood.Emoji, mood.Label, mood.Score)
		fmt.Printf("%s, SLA %dh [%s]\n", paintPriority(decision.Priority), decision.SLAHours, decision.Rule)
		return nil

	case "submit":
		category := flags.String("category", "", "manual category")
		by := flags.String("by", "", "submitter")
		if err := flags.Parse(args); err != nil {
			return err
		}
		complaint, err := service.SubmitComplaint(ctx, services.NewComplaint{
			Text:        strings.Join(flags.Args(), " "),
			Category:    *category,
			SubmittedBy: *by,
		})
		if err != nil {
			return err
		}
		printComplaint(complaint)
		return nil

	case "feedback":
		id := flags.String("id", "", "complaint id")
		correct := flags.Bool("correct", false, "the predicted category was right")
		category := flags.String("category", "", "corrected category")
		if err := flags.Parse(args); err != nil {
			return err
		}
		complaintID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid complaint id %q: %w", *id, err)
		}
		result, err := service.RecordFeedback(ctx, services.FeedbackRequest{
			ComplaintID: complaintID,
			IsCorrect:   *correct,
			Category:    *category,
		})
		if err != nil {
			return err
		}
		color.Green.Printf("Feedback recorded (%d total)\n", result.FeedbackCountAfter)
		if result.RetrainQueued {
			color.Cyan.Println("Retraining the model...")
		}
		return nil

	case "status":
		id := flags.String("id", "", "complaint id")
		set := flags.String("set", "", "pending, in_progress or resolved")
		if err := flags.Parse(args); err != nil {
			return err
		}
		complaintID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid complaint id %q: %w", *id, err)
		}
		complaint, err := service.UpdateStatus(ctx, complaintID, domain.Status(*set))
		if err != nil {
			return err
		}
		printComplaint(complaint)
		return nil

	case "list":
		page := flags.Int("page", 1, "page number")
		perPage := flags.Int("per-page", 0, "page size")
		if err := flags.Parse(args); err != nil {
			return err
		}
		result, err := service.ListComplaints(ctx, *page, *perPage)
		if err != nil {
			return err
		}
		for _, complaint := range result.Complaints {
			printLine(complaint)
		}
		fmt.Printf("page %d/%d, %d complaints\n", result.Page, result.Pages(), result.Total)
		return nil

	case "search":
		limit := flags.Int("limit", 10, "maximum hits")
		if err := flags.Parse(args); err != nil {
			return err
		}
		hits, err := service.Search(ctx, strings.Join(flags.Args(), " "), *limit)
		if err != nil {
			return err
		}
		for _, complaint := range hits {
			printLine(complaint)
		}
		return nil

	case "summary":
		summary, err := service.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d complaints, %d feedbacks, %d corrections\n", summary.Total, summary.Feedback, summary.Corrections)
		for _, category := range lo.Union(domain.Categories, []domain.Category{domain.Uncategorized}) {
			if n := summary.ByCategory[category]; n > 0 {
				fmt.Printf("  %s %-13s %d\n", category.Emoji(), category, n)
			}
		}
		for _, p := range []domain.Priority{domain.Critical, domain.High, domain.Medium, domain.Low} {
			fmt.Printf("  %-22s %d\n", paintPriority(p), summary.ByPriority[p])
		}
		return nil

	case "info":
		info := service.GetModelInfo()
		if info.Degraded {
			color.Yellow.Println("No model published, classification is degraded")
		} else {
			fmt.Printf("model v%d trained %s on %d samples, %d terms\n",
				info.Version, info.TrainedAt.Format("2006-01-02 15:04:05"), info.SampleCount, info.Vocabulary)
		}
		fmt.Println("priority rules, first match wins:")
		for i, rule := range service.PriorityRules() {
			fmt.Printf("  %d. %-20s %s, SLA %dh\n", i+1, rule.Name, paintPriority(rule.Priority), rule.SLAHours)
		}
		fallback := priority.Fallback
		fmt.Printf("  %d. %-20s %s, SLA %dh\n", len(service.PriorityRules())+1, fallback.Rule, paintPriority(fallback.Priority), fallback.SLAHours)
		return nil

	case "retrain":
		result, err := coordinator.RunCycle(ctx)
		if err != nil {
			return err
		}
		if !result.Published {
			color.Yellow.Printf("Not enough corrections (%d), model unchanged\n", result.CorrectedSamples)
			return nil
		}
		color.Green.Printf("Model v%d published with %d corrections\n", result.Version, result.CorrectedSamples)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func ingest(ctx context.Context, service *services.TriageService) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		complaint, err := service.SubmitComplaint(ctx, services.NewComplaint{Text: line, SubmittedBy: "stdin"})
		if err != nil {
			color.Red.Printf("rejected: %v\n", err)
			continue
		}
		printLine(complaint)
	}
	return scanner.Err()
}

func printComplaint(c domain.Complaint) {
	color.Bold.Println(c.ID)
	fmt.Printf("  %s %s (%.2f)", c.Category.Emoji(), paintCategory(c.Category), c.Confidence)
	if c.IsManualCategory {
		fmt.Printf(" manual, model said %s", c.MLCategory)
	}
	fmt.Println()
	fmt.Printf("  %s %s (%.2f) %s\n", c.SentimentEmoji, c.Sentiment, c.SentimentScore, c.Lang)
	fmt.Printf("  %s, due %s\n", paintPriority(c.Priority), c.SLADeadline.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  status %s\n", c.Status)
}

func printLine(c domain.Complaint) {
	text := c.Text
	if len([]rune(text)) > 60 {
		text = string([]rune(text)[:57]) + "..."
	}
	fmt.Printf("%s %s %-10s %s %s\n", c.ID.String()[:8], c.Category.Emoji(), c.Status, paintPriority(c.Priority), text)
}

func paintCategory(c domain.Category) string {
	if c == domain.Uncategorized {
		return color.Gray.Render(string(c))
	}
	return color.Cyan.Render(string(c))
}

func paintPriority(p domain.Priority) string {
	switch p {
	case domain.Critical:
		return color.New(color.BgRed, color.FgWhite).Render(string(p))
	case domain.High:
		return color.Red.Render(string(p))
	case domain.Medium:
		return color.Yellow.Render(string(p))
	default:
		return color.Green.Render(string(p))
	}
}
