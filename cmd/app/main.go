package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"seeder/cmd"
	"seeder/internal/adapters/out/postgres/orderrecordrepo"
	"seeder/internal/core/application/usecases/commands"
	"seeder/internal/core/application/usecases/queries"
	"seeder/internal/jobs"
	"seeder/internal/stub"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	if configs.Mode == "stub" {
		startStubServer(configs.HTTPPort)
		return
	}

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	switch configs.Mode {
	case "purge":
		runPurge(&app)
	case "list":
		runList(&app)
	case "cron":
		runCron(&app, configs)
	default:
		runSeeding(&app, configs)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		Mode:               goDotEnvVariable("SEEDER_MODE"),
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		BackendURL:         goDotEnvVariable("BACKEND_URL"),
		BackendToken:       goDotEnvVariable("BACKEND_TOKEN"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		OrderCount:         goDotEnvVariable("ORDER_COUNT"),
		SubmitMinDelayMs:   goDotEnvVariable("SUBMIT_MIN_DELAY_MS"),
		SubmitMaxDelayMs:   goDotEnvVariable("SUBMIT_MAX_DELAY_MS"),
		ProgressionDelayMs: goDotEnvVariable("PROGRESSION_DELAY_MS"),
		ReseedCronSchedule: goDotEnvVariable("RESEED_CRON_SCHEDULE"),
		ReseedPurgeFirst:   goDotEnvVariable("RESEED_PURGE_FIRST"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrecordrepo.OrderRecordDTO{}); err != nil {
		log.Fatalf("Error migrating seed ledger schema: %v", err)
	}

	return gormDB
}

func runSeeding(app *cmd.CompositionRoot, configs cmd.Config) {
	pool, err := cmd.DefaultAddressPool()
	if err != nil {
		log.Fatalf("Error building address pool: %v", err)
	}

	plans, err := cmd.DefaultPlans(orderCount(configs))
	if err != nil {
		log.Fatalf("Error building order plans: %v", err)
	}

	seedCmd, err := commands.NewRunSeedingCommand(pool, plans)
	if err != nil {
		log.Fatalf("Error building seeding command: %v", err)
	}

	handler := app.CreateRunSeedingCommandHandler()
	report, err := handler.Handle(signalContext(), seedCmd)
	if err != nil {
		log.Fatalf("Seeding run failed: %v", err)
	}

	fmt.Print(report)
	printCallStats(app)
}

func runPurge(app *cmd.CompositionRoot) {
	purgeCmd := commands.NewPurgeSeedDataCommand()
	handler := app.CreatePurgeSeedDataCommandHandler()
	removed, err := handler.Handle(signalContext(), purgeCmd)
	if err != nil {
		log.Fatalf("Purge failed: %v", err)
	}

	fmt.Printf("purged %d seeded orders\n", removed)
}

func runList(app *cmd.CompositionRoot) {
	query := queries.NewGetSeededOrdersQuery()
	handler := app.CreateGetSeededOrdersQueryHandler()
	records, err := handler.Handle(signalContext(), query)
	if err != nil {
		log.Fatalf("Listing seeded orders failed: %v", err)
	}

	for _, record := range records {
		fmt.Printf("%s  %-8s  paid %d/%d  remaining %d\n",
			record.ID, record.Status, record.PaidSteps, record.TotalSteps, record.RemainingAmount)
	}
	fmt.Printf("%d seeded orders\n", len(records))
}

func runCron(app *cmd.CompositionRoot, configs cmd.Config) {
	pool, err := cmd.DefaultAddressPool()
	if err != nil {
		log.Fatalf("Error building address pool: %v", err)
	}

	plans, err := cmd.DefaultPlans(orderCount(configs))
	if err != nil {
		log.Fatalf("Error building order plans: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reseedJob := jobs.NewReseedJob(
		app.CreateRunSeedingCommandHandler(),
		app.CreatePurgeSeedDataCommandHandler(),
		pool,
		plans,
		configs.ReseedCronSchedule,
		configs.ReseedPurgeFirst == "true",
		logger,
	)

	jobManager := jobs.NewJobManager(reseedJob)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx := signalContext()
	<-ctx.Done()
}

func startStubServer(port string) {
	e := echo.New()
	backend := stub.NewServer()
	backend.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func printCallStats(app *cmd.CompositionRoot) {
	snapshot := app.CallStats().Snapshot()
	fmt.Printf("calls %d (ok %d, failed %d), latency p50 %s p90 %s p99 %s max %s\n",
		snapshot.Calls, snapshot.Successes, snapshot.Failures,
		snapshot.P50, snapshot.P90, snapshot.P99, snapshot.Max)
}

func orderCount(configs cmd.Config) int {
	if configs.OrderCount == "" {
		return 10
	}

	count, err := strconv.Atoi(configs.OrderCount)
	if err != nil || count <= 0 {
		log.Fatalf("Invalid ORDER_COUNT: %q", configs.OrderCount)
	}
	return count
}

// signalContext returns a context cancelled by SIGINT or SIGTERM, so a run
// that is interrupted stops between paced calls rather than mid-flight.
func signalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}
