package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lunchsim/lunchsim/internal/factories"
	"github.com/lunchsim/lunchsim/internal/loader"
	"github.com/lunchsim/lunchsim/internal/models"
	"github.com/lunchsim/lunchsim/internal/repositories/postgres"
	"github.com/lunchsim/lunchsim/internal/simulator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lunchsim",
	Short: "Simulates food trucks competing for high school lunch customers",
	Long: `lunchsim runs a multi-day simulation of a student population choosing
between competing food trucks, the school cafeteria and an off-campus
fast-food stand, and scores which truck wins on total revenue.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runSimulation(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for simulation")
	rootCmd.Flags().Int("days", 30, "Number of days to simulate")
	rootCmd.Flags().Int("students", 1000, "Synthetic population size when no survey CSVs are given")
	rootCmd.Flags().StringSlice("menu-files", nil, "Truck menu files, in competition order (2-4)")
	rootCmd.Flags().String("student-food-csv", "", "Path to the student food survey CSV")
	rootCmd.Flags().String("drink-survey-csv", "", "Path to the drink preferences survey CSV")
	rootCmd.Flags().Bool("verbose", false, "Print daily summaries")
	rootCmd.Flags().String("export-dir", "", "Export per-truck CSV results to this directory")
	rootCmd.Flags().String("output-format", "", "Result sink format: console, json, csv or parquet")
	rootCmd.Flags().String("output-path", "output", "Base path for file output")
	rootCmd.Flags().String("output-folder", "results", "Folder under the output path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Stream results to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("cloud-storage", "", "Cloud storage target for parquet output (s3)")
	rootCmd.Flags().String("cloud-bucket-name", "", "Bucket for cloud output")
	rootCmd.Flags().String("cloud-region", "", "Region for cloud output")
	rootCmd.Flags().Bool("database-enabled", false, "Persist profiles and results to Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runSimulation(cfg *models.Config) error {
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	students, err := loadStudents(cfg, rng)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d students", len(students))

	trucks, err := loadTrucks(cfg)
	if err != nil {
		return err
	}
	for i, truck := range trucks {
		log.Printf("Truck %d: %s (%d menu items)", i+1, truck.TruckName, len(truck.Menu))
	}

	sim := simulator.NewSimulator(cfg, students, trucks)
	result := sim.Run()

	simulator.PrintRunSummary(result)

	if cfg.ExportDir != "" {
		if err := simulator.ExportCSV(result, cfg.ExportDir); err != nil {
			return fmt.Errorf("failed to export CSV results: %w", err)
		}
		log.Printf("Results exported to %s", cfg.ExportDir)
	}

	if cfg.OutputFormat != "" || cfg.KafkaEnabled {
		out, err := simulator.DetermineOutputDestination(cfg)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := simulator.PublishResults(result, out); err != nil {
			return fmt.Errorf("failed to publish results: %w", err)
		}
	}

	if cfg.DatabaseEnabled {
		if err := persistRun(cfg, students, result); err != nil {
			return fmt.Errorf("failed to persist run: %w", err)
		}
	}
	return nil
}

func loadStudents(cfg *models.Config, rng *rand.Rand) ([]*models.StudentProfile, error) {
	if cfg.StudentFoodCSV != "" && cfg.DrinkSurveyCSV != "" {
		return loader.LoadStudents(cfg.StudentFoodCSV, cfg.DrinkSurveyCSV, &cfg.Params, rng)
	}
	log.Printf("No survey CSVs configured, generating %d synthetic students", cfg.Students)
	factory := &factories.StudentFactory{}
	return factory.CreateStudents(cfg.Students, &cfg.Params, rng), nil
}

func loadTrucks(cfg *models.Config) ([]*models.Truck, error) {
	if len(cfg.MenuFiles) < 2 || len(cfg.MenuFiles) > 4 {
		return nil, fmt.Errorf("need between 2 and 4 menu files, got %d", len(cfg.MenuFiles))
	}
	trucks := make([]*models.Truck, 0, len(cfg.MenuFiles))
	for _, path := range cfg.MenuFiles {
		menu, err := loader.LoadMenu(path)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, models.NewTruck(menu.Name, menu.Items))
	}
	return trucks, nil
}

func persistRun(cfg *models.Config, students []*models.StudentProfile, result *models.RunResult) error {
	ctx := context.Background()
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer pool.Close()

	studentRepo := postgres.NewStudentRepository(pool)
	if err := studentRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := studentRepo.BulkCreate(ctx, students); err != nil {
		return err
	}

	runRepo := postgres.NewRunResultRepository(pool)
	if err := runRepo.Create(ctx, result); err != nil {
		return err
	}
	log.Printf("Run %s persisted to database", result.RunID)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
