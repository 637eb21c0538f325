package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Workload kinds understood by the trace runner.
const (
	KindPushBack    = "push_back"
	KindInsertFront = "insert_front"
	KindResize      = "resize"
	KindReservePush = "reserve_push"
)

type Config struct {
	Logger Logger `yaml:"logger"`
	Trace  Trace  `yaml:"trace"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `yaml:"max_size" validate:"gte=0"`
	Compress    bool   `yaml:"compress"`
}

// Trace is the configuration for growth traces
type Trace struct {
	Workloads []Workload `yaml:"workloads" validate:"required,min=1,dive"`
}

// Workload describes one sequence of operations replayed against a fresh vector.
type Workload struct {
	Name  string `yaml:"name" validate:"required"`
	Kind  string `yaml:"kind" validate:"required,oneof=push_back insert_front resize reserve_push"`
	Count int    `yaml:"count" validate:"gt=0"`
	Step  int    `yaml:"step" validate:"gte=0"` // Resize increment; 0 means 1
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logger: Logger{LogLevel: "info"},
		Trace: Trace{
			Workloads: []Workload{
				{Name: "append", Kind: KindPushBack, Count: 1 << 16},
				{Name: "prepend", Kind: KindInsertFront, Count: 1 << 10},
				{Name: "resize", Kind: KindResize, Count: 1 << 12, Step: 3},
				{Name: "reserved", Kind: KindReservePush, Count: 1 << 16},
			},
		},
	}
}

// Load reads a YAML config from path and validates it.
// Sections missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
