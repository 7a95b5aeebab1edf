package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// SimParams holds every tunable of the scoring engine, decision policy and
// daily-state generator. It is built once at startup and passed explicitly
// into the simulation so tests can substitute alternate tunings.
type SimParams struct {
	WeightPreference    float64 `mapstructure:"weight_preference"`
	WeightAffordability float64 `mapstructure:"weight_affordability"`
	WeightMoodHealth    float64 `mapstructure:"weight_mood_health"`

	BonusFuzzyMatchHigh   float64 `mapstructure:"bonus_fuzzy_match_high"`
	BonusFuzzyMatchMedium float64 `mapstructure:"bonus_fuzzy_match_medium"`
	BonusSweet            float64 `mapstructure:"bonus_sweet"`
	BonusSavory           float64 `mapstructure:"bonus_savory"`
	BonusEnergy           float64 `mapstructure:"bonus_energy"`
	BonusHighCalorie      float64 `mapstructure:"bonus_high_calorie"`
	BonusCategoryMatch    float64 `mapstructure:"bonus_category_match"`

	PenaltyNoDrink float64 `mapstructure:"penalty_no_drink"`

	FuzzyThresholdHigh   int `mapstructure:"fuzzy_threshold_high"`
	FuzzyThresholdMedium int `mapstructure:"fuzzy_threshold_medium"`
	HighCalorieThreshold int `mapstructure:"high_calorie_threshold"`

	DrowsinessChance float64 `mapstructure:"drowsiness_chance"`
	HasCarPercentage float64 `mapstructure:"has_car_percentage"`
	MoneyVariance    float64 `mapstructure:"money_variance"`
	DefaultBaseMoney float64 `mapstructure:"default_base_money"`

	CafeteriaDailyFoodCount  int `mapstructure:"cafeteria_daily_food_count"`
	CafeteriaDailyDrinkCount int `mapstructure:"cafeteria_daily_drink_count"`

	// MoneyTable maps money-for-lunch bracket -> income level -> base budget.
	MoneyTable map[string]map[string]float64 `mapstructure:"money_table"`

	// HealthyMoodProbability maps the healthy-importance answer to the base
	// probability of waking up in a healthy mood.
	HealthyMoodProbability map[string]float64 `mapstructure:"healthy_mood_probability"`

	// HealthGoalModifier shifts the healthy-mood probability per health goal.
	HealthGoalModifier map[string]float64 `mapstructure:"health_goal_modifier"`
}

// BaseMoney resolves the daily budget base amount for a bracket/income pair,
// falling back to the configured medium default for unmapped combinations.
func (p *SimParams) BaseMoney(moneyForLunch, incomeLevel string) float64 {
	if byIncome, ok := p.MoneyTable[moneyForLunch]; ok {
		if base, ok := byIncome[incomeLevel]; ok {
			return base
		}
	}
	return p.DefaultBaseMoney
}

// DefaultSimParams returns the reference tuning.
func DefaultSimParams() SimParams {
	return SimParams{
		WeightPreference:    0.50,
		WeightAffordability: 0.30,
		WeightMoodHealth:    0.20,

		BonusFuzzyMatchHigh:   2.00,
		BonusFuzzyMatchMedium: 1.50,
		BonusSweet:            1.25,
		BonusSavory:           1.20,
		BonusEnergy:           1.30,
		BonusHighCalorie:      1.20,
		BonusCategoryMatch:    1.35,

		PenaltyNoDrink: 0.85,

		FuzzyThresholdHigh:   85,
		FuzzyThresholdMedium: 70,
		HighCalorieThreshold: 600,

		DrowsinessChance: 0.30,
		HasCarPercentage: 0.20,
		MoneyVariance:    0.20,
		DefaultBaseMoney: 8.50,

		CafeteriaDailyFoodCount:  4,
		CafeteriaDailyDrinkCount: 2,

		MoneyTable: map[string]map[string]float64{
			AnswerMoneyLow: {
				IncomeLow:    5.00,
				IncomeMedium: 6.00,
				IncomeHigh:   6.50,
			},
			AnswerMoneyMedium: {
				IncomeLow:    7.50,
				IncomeMedium: 8.50,
				IncomeHigh:   9.50,
			},
			AnswerMoneyHigh: {
				IncomeLow:    10.50,
				IncomeMedium: 12.00,
				IncomeHigh:   14.00,
			},
		},

		HealthyMoodProbability: map[string]float64{
			AnswerHealthyVeryImportant:     0.75,
			AnswerHealthySomewhatImportant: 0.50,
			AnswerHealthyNotImportant:      0.25,
		},

		HealthGoalModifier: map[string]float64{
			AnswerGoalLoseWeight: 0.10,
			AnswerGoalMaintain:   0.0,
			AnswerGoalGainMuscle: -0.05,
			AnswerGoalNotFocused: 0.0,
		},
	}
}

type Config struct {
	Seed     int  `mapstructure:"seed"`
	Days     int  `mapstructure:"days"`
	Students int  `mapstructure:"students"`
	Verbose  bool `mapstructure:"verbose"`

	MenuFiles      []string `mapstructure:"menu_files"`
	StudentFoodCSV string   `mapstructure:"student_food_csv"`
	DrinkSurveyCSV string   `mapstructure:"drink_survey_csv"`

	ExportDir    string `mapstructure:"export_dir"`
	OutputFormat string `mapstructure:"output_format"`
	OutputFolder string `mapstructure:"output_folder"`
	OutputPath   string `mapstructure:"output_path"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	CloudStorage    string `mapstructure:"cloud_storage"` // "" or "s3"
	CloudBucketName string `mapstructure:"cloud_bucket_name"`
	CloudRegion     string `mapstructure:"cloud_region"`

	DatabaseEnabled bool           `mapstructure:"database_enabled"`
	Database        DatabaseConfig `mapstructure:"database"`

	Params SimParams `mapstructure:"params"`
}

// LoadConfig initializes and reads the configuration using Viper.
// Flag bindings and environment variables override file values; the
// reference tuning in DefaultSimParams fills anything the file leaves out.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; flags and defaults are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := Config{Params: DefaultSimParams()}
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			dc.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
