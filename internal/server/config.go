package server

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pebbles/internal/beacon"
	"github.com/lox/pebbles/internal/pebbles"
)

// Config is the complete host configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Game   *GameSettings  `hcl:"game,block"`
}

// ServerSettings contains process-level configuration
type ServerSettings struct {
	Address             string `hcl:"address,optional"`
	Port                int    `hcl:"port,optional"`
	LogLevel            string `hcl:"log_level,optional"`
	StateFile           string `hcl:"state_file,optional"`
	InvocationTimeoutMS *int   `hcl:"invocation_timeout_ms,optional"` // 0 disables the budget
	BeaconKey           string `hcl:"beacon_key,optional"` // hex; random per process when empty
}

// GameSettings describes the game created at startup when AutoInit is set
type GameSettings struct {
	PebblesCount      int    `hcl:"pebbles_count,optional"`
	MaxPebblesPerTurn int    `hcl:"max_pebbles_per_turn,optional"`
	Difficulty        string `hcl:"difficulty,optional"`
	AutoInit          bool   `hcl:"auto_init,optional"`
}

const (
	defaultAddress   = "localhost"
	defaultPort      = 8080
	defaultLogLevel  = "info"
	defaultTimeoutMS = 5000
)

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func defaultGame() *GameSettings {
	return &GameSettings{
		PebblesCount:      15,
		MaxPebblesPerTurn: 3,
		Difficulty:        "easy",
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaultLogLevel
	}
	if c.Server.InvocationTimeoutMS == nil {
		ms := defaultTimeoutMS
		c.Server.InvocationTimeoutMS = &ms
	}

	if c.Game == nil {
		c.Game = defaultGame()
		return
	}
	d := defaultGame()
	if c.Game.PebblesCount == 0 {
		c.Game.PebblesCount = d.PebblesCount
	}
	if c.Game.MaxPebblesPerTurn == 0 {
		c.Game.MaxPebblesPerTurn = min(d.MaxPebblesPerTurn, c.Game.PebblesCount)
	}
	if c.Game.Difficulty == "" {
		c.Game.Difficulty = d.Difficulty
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := log.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.Server.LogLevel, err)
	}
	if ms := c.Server.InvocationTimeoutMS; ms != nil && *ms < 0 {
		return fmt.Errorf("invocation_timeout_ms must not be negative, got %d", *ms)
	}
	if c.Server.BeaconKey != "" {
		if _, err := beacon.KeyFromHex(c.Server.BeaconKey); err != nil {
			return fmt.Errorf("beacon_key: %w", err)
		}
	}

	cfg, err := c.GameConfig()
	if err != nil {
		return err
	}
	if c.Game.AutoInit {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("game: %w", err)
		}
	}
	return nil
}

// GetServerAddress returns the full listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Budget returns the per-invocation budget. Zero means unbounded.
func (c *Config) Budget() time.Duration {
	if c.Server.InvocationTimeoutMS == nil {
		return defaultTimeoutMS * time.Millisecond
	}
	return time.Duration(*c.Server.InvocationTimeoutMS) * time.Millisecond
}

// GameConfig converts the game block into a creation input.
func (c *Config) GameConfig() (pebbles.Config, error) {
	count, err := pebbleCount("pebbles_count", c.Game.PebblesCount)
	if err != nil {
		return pebbles.Config{}, err
	}
	perTurn, err := pebbleCount("max_pebbles_per_turn", c.Game.MaxPebblesPerTurn)
	if err != nil {
		return pebbles.Config{}, err
	}
	d, err := pebbles.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return pebbles.Config{}, fmt.Errorf("game: %w", err)
	}
	return pebbles.Config{
		PebblesCount:      count,
		MaxPebblesPerTurn: perTurn,
		Difficulty:        d,
	}, nil
}

// pebbleCount narrows an HCL number to the wire width.
func pebbleCount(name string, v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("game: %s must be between 0 and %d, got %d", name, uint32(math.MaxUint32), v)
	}
	return uint32(v), nil
}
