package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// MaxFileSize bounds the YAML files Load is willing to read.
const MaxFileSize = 1 << 20

// Environment variables consulted by Load.
const (
	EnvConfig    = "GRIDPATH_CONFIG"
	EnvAddr      = "GRIDPATH_ADDR"
	EnvLogLevel  = "GRIDPATH_LOG_LEVEL"
	EnvAlgorithm = "GRIDPATH_ALGORITHM"
	EnvDelay     = "GRIDPATH_DELAY"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrTooLarge is returned for files above MaxFileSize.
	ErrTooLarge = errors.New("config: file too large")
)

//go:embed default.yaml
var defaultYAML []byte

var validate = newValidator()

// Config is the root of the YAML document.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Run    RunConfig    `yaml:"run"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig sizes and seeds the board.
type GridConfig struct {
	Rows int `yaml:"rows" validate:"min=1,max=500"`
	Cols int `yaml:"cols" validate:"min=1,max=500"`

	// Start and Goal override the default endpoints when set.
	Start *Point `yaml:"start,omitempty"`
	Goal  *Point `yaml:"goal,omitempty"`

	// WallDensity > 0 fills the new grid with random walls drawn from Seed.
	WallDensity float64 `yaml:"wall_density" validate:"gte=0,lte=1"`
	Seed        int64   `yaml:"seed"`
}

// Point is a cell coordinate in YAML form.
type Point struct {
	Row int `yaml:"row" validate:"gte=0"`
	Col int `yaml:"col" validate:"gte=0"`
}

// RunConfig holds the defaults for a run.
type RunConfig struct {
	Algorithm string        `yaml:"algorithm" validate:"algorithm"`
	Delay     time.Duration `yaml:"delay" validate:"gte=0"`
}

// ServerConfig configures `gridpath serve`.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := search.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Default returns the embedded defaults.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return &c
}

// Path returns flagValue if set, otherwise $GRIDPATH_CONFIG (possibly "").
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfig)
}

// LoadEnv reads .env files into the process environment without overriding
// variables that are already set. Missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Load merges the defaults, the YAML file at path (skipped when path is ""),
// and environment overrides, then validates the result.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return data, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		c.Run.Algorithm = v
	}
	if v, ok := os.LookupEnv(EnvDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvDelay, v, err)
		}
		c.Run.Delay = d
	}
	return nil
}

// Validate checks struct tags and that configured endpoints lie on the grid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for name, p := range map[string]*Point{"start": c.Grid.Start, "goal": c.Grid.Goal} {
		if p != nil && (p.Row >= c.Grid.Rows || p.Col >= c.Grid.Cols) {
			return fmt.Errorf("%w: grid.%s (%d,%d) outside %dx%d grid",
				ErrInvalid, name, p.Row, p.Col, c.Grid.Rows, c.Grid.Cols)
		}
	}
	return nil
}

// NewGrid builds the grid described by c.Grid, with random walls when
// WallDensity is positive.
func (c *Config) NewGrid() (*grid.Grid, error) {
	var opts []grid.Option
	if p := c.Grid.Start; p != nil {
		opts = append(opts, grid.WithStart(grid.Pos(p.Row, p.Col)))
	}
	if p := c.Grid.Goal; p != nil {
		opts = append(opts, grid.WithGoal(grid.Pos(p.Row, p.Col)))
	}
	g, err := grid.New(c.Grid.Rows, c.Grid.Cols, opts...)
	if err != nil {
		return nil, err
	}
	if c.Grid.WallDensity > 0 {
		g.Randomize(rand.New(rand.NewSource(c.Grid.Seed)), c.Grid.WallDensity)
	}
	return g, nil
}
