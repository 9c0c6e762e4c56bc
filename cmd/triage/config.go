package main

import "time"

type Config struct {
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	IndexFilepath       string        `env:"INDEX_FILEPATH,required=true"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=1s"`
	TrainingTimeout     time.Duration `env:"TRAINING_TIMEOUT,default=2m"`
	RetrainMinFeedback  int           `env:"RETRAIN_MIN_FEEDBACK,default=50"`
	RetrainEvery        int           `env:"RETRAIN_EVERY,default=10"`
	MinCorrectedSamples int           `env:"MIN_CORRECTED_SAMPLES,default=10"`
	PriorityPolicyPath  string        `env:"PRIORITY_POLICY_PATH"`
	SnapshotRetention   int           `env:"SNAPSHOT_RETENTION,default=5"`
	PruneSchedule       string        `env:"PRUNE_SCHEDULE,default=@hourly"`
	DefaultPageSize     int           `env:"DEFAULT_PAGE_SIZE,default=20"`
}
