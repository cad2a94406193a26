// Package config holds the tunables of a Car Dodge run. Defaults match the
// classic arcade game; a YAML file, CARDODGE_* environment variables and command
// line flags can override them through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// FramesPerSecond is the fixed cadence the engine assumes for per-second rates.
const FramesPerSecond = 60

// LaneCeiling is the most lanes a road can ever hold.
const LaneCeiling = 10

// Config is the full game configuration
type Config struct {
	Playfield  Playfield  `mapstructure:"playfield"`
	Player     Player     `mapstructure:"player"`
	Traffic    Traffic    `mapstructure:"traffic"`
	Difficulty Difficulty `mapstructure:"difficulty"`
	Penalty    Penalty    `mapstructure:"penalty"`
	Shoulder   Shoulder   `mapstructure:"shoulder"`
	Frontend   Frontend   `mapstructure:"frontend"`
	Storage    Storage    `mapstructure:"storage"`
}

// Playfield describes the canvas the game is played on
type Playfield struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	GrassWidth  float64 `mapstructure:"grass_width"`
	EdgeMargin  float64 `mapstructure:"edge_margin"` // how close to the canvas edge the player may drive
	TopMargin   float64 `mapstructure:"top_margin"`
	RoadSpeed   float64 `mapstructure:"road_speed"`  // dash scroll per frame
	DashPeriod  float64 `mapstructure:"dash_period"` // scroll offset wraps at this value
	SpeedFactor float64 `mapstructure:"speed_factor"`
}

// Player describes the player's car
type Player struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	Speed       float64 `mapstructure:"speed"`
	StartOffset float64 `mapstructure:"start_offset"` // distance of the car's top from the bottom edge
}

// Traffic describes the traffic cars and the spawner
type Traffic struct {
	Width          float64  `mapstructure:"width"`
	Height         float64  `mapstructure:"height"`
	BaseSpeed      float64  `mapstructure:"base_speed"`
	SpeedPerPoint  float64  `mapstructure:"speed_per_point"`
	SpawnY         float64  `mapstructure:"spawn_y"`
	SpawnInterval  int      `mapstructure:"spawn_interval"` // frames
	ClearanceX     float64  `mapstructure:"clearance_x"`
	ClearanceY     float64  `mapstructure:"clearance_y"`
	PassAward      int      `mapstructure:"pass_award"`
	CollisionInset float64  `mapstructure:"collision_inset"`
	Colors         []string `mapstructure:"colors"`
}

// Difficulty describes the milestone curve
type Difficulty struct {
	SpawnMilestone     int     `mapstructure:"spawn_milestone"` // points per spawn-rate band
	SpawnDecay         float64 `mapstructure:"spawn_decay"`
	MinSpawnInterval   int     `mapstructure:"min_spawn_interval"`
	InitialLanes       int     `mapstructure:"initial_lanes"`
	MaxLanes           int     `mapstructure:"max_lanes"`
	FirstLaneMilestone int     `mapstructure:"first_lane_milestone"`
	LaneInterval       int     `mapstructure:"lane_interval"`
	LaneIntervalGrowth float64 `mapstructure:"lane_interval_growth"`
}

// Penalty describes score loss in penalty zones
type Penalty struct {
	PointsPerSecond float64 `mapstructure:"points_per_second"`
}

// Shoulder describes the optional left shoulder lane
type Shoulder struct {
	Enabled       bool    `mapstructure:"enabled"`
	Width         float64 `mapstructure:"width"`
	OpenSeconds   float64 `mapstructure:"open_seconds"`
	ClosedSeconds float64 `mapstructure:"closed_seconds"`
}

// Frontend selects and tunes the host loop
type Frontend struct {
	Kind  string  `mapstructure:"kind"` // desktop or terminal
	Scale float64 `mapstructure:"scale"`
	Mute  bool    `mapstructure:"mute"`
	Seed  int64   `mapstructure:"seed"` // 0 means seed from the clock
}

// Storage locates the persisted high score
type Storage struct {
	Path string `mapstructure:"path"`
}

// Frontend kinds
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Default returns the classic arcade tuning
func Default() *Config {
	return &Config{
		Playfield: Playfield{
			Width:       400,
			Height:      600,
			GrassWidth:  30,
			EdgeMargin:  10,
			TopMargin:   50,
			RoadSpeed:   5,
			DashPeriod:  40,
			SpeedFactor: 20,
		},
		Player: Player{
			Width:       40,
			Height:      70,
			Speed:       5,
			StartOffset: 120,
		},
		Traffic: Traffic{
			Width:          40,
			Height:         70,
			BaseSpeed:      3,
			SpeedPerPoint:  0.0005,
			SpawnY:         -80,
			SpawnInterval:  120,
			ClearanceX:     45,
			ClearanceY:     150,
			PassAward:      10,
			CollisionInset: 5,
			Colors:         []string{"#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF", "#FFA500"},
		},
		Difficulty: Difficulty{
			SpawnMilestone:     50,
			SpawnDecay:         0.85,
			MinSpawnInterval:   1,
			InitialLanes:       3,
			MaxLanes:           10,
			FirstLaneMilestone: 50,
			LaneInterval:       150,
			LaneIntervalGrowth: 1.5,
		},
		Penalty: Penalty{
			PointsPerSecond: 20,
		},
		Shoulder: Shoulder{
			Enabled:       false,
			Width:         50,
			OpenSeconds:   5,
			ClosedSeconds: 10,
		},
		Frontend: Frontend{
			Kind:  FrontendDesktop,
			Scale: 1.0,
		},
	}
}

// SetDefaults registers every default value with v so that files and
// environment variables only need to name what they change.
func SetDefaults(v *viper.Viper) {
	d := Default()
	defaults := map[string]any{
		"playfield.width":                 d.Playfield.Width,
		"playfield.height":                d.Playfield.Height,
		"playfield.grass_width":           d.Playfield.GrassWidth,
		"playfield.edge_margin":           d.Playfield.EdgeMargin,
		"playfield.top_margin":            d.Playfield.TopMargin,
		"playfield.road_speed":            d.Playfield.RoadSpeed,
		"playfield.dash_period":           d.Playfield.DashPeriod,
		"playfield.speed_factor":          d.Playfield.SpeedFactor,
		"player.width":                    d.Player.Width,
		"player.height":                   d.Player.Height,
		"player.speed":                    d.Player.Speed,
		"player.start_offset":             d.Player.StartOffset,
		"traffic.width":                   d.Traffic.Width,
		"traffic.height":                  d.Traffic.Height,
		"traffic.base_speed":              d.Traffic.BaseSpeed,
		"traffic.speed_per_point":         d.Traffic.SpeedPerPoint,
		"traffic.spawn_y":                 d.Traffic.SpawnY,
		"traffic.spawn_interval":          d.Traffic.SpawnInterval,
		"traffic.clearance_x":             d.Traffic.ClearanceX,
		"traffic.clearance_y":             d.Traffic.ClearanceY,
		"traffic.pass_award":              d.Traffic.PassAward,
		"traffic.collision_inset":         d.Traffic.CollisionInset,
		"traffic.colors":                  d.Traffic.Colors,
		"difficulty.spawn_milestone":      d.Difficulty.SpawnMilestone,
		"difficulty.spawn_decay":          d.Difficulty.SpawnDecay,
		"difficulty.min_spawn_interval":   d.Difficulty.MinSpawnInterval,
		"difficulty.initial_lanes":        d.Difficulty.InitialLanes,
		"difficulty.max_lanes":            d.Difficulty.MaxLanes,
		"difficulty.first_lane_milestone": d.Difficulty.FirstLaneMilestone,
		"difficulty.lane_interval":        d.Difficulty.LaneInterval,
		"difficulty.lane_interval_growth": d.Difficulty.LaneIntervalGrowth,
		"penalty.points_per_second":       d.Penalty.PointsPerSecond,
		"shoulder.enabled":                d.Shoulder.Enabled,
		"shoulder.width":                  d.Shoulder.Width,
		"shoulder.open_seconds":           d.Shoulder.OpenSeconds,
		"shoulder.closed_seconds":         d.Shoulder.ClosedSeconds,
		"frontend.kind":                   d.Frontend.Kind,
		"frontend.scale":                  d.Frontend.Scale,
		"frontend.mute":                   d.Frontend.Mute,
		"frontend.seed":                   d.Frontend.Seed,
		"storage.path":                    d.Storage.Path,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// NewViper returns a viper instance with defaults and CARDODGE_* environment
// overrides wired in. Callers may bind flags before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("CARDODGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the engine cannot run with
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	pf := c.Playfield
	check(pf.Width > 0 && pf.Height > 0, "playfield must have a positive size")
	check(pf.GrassWidth >= 0, "grass width must not be negative")
	check(pf.DashPeriod > 0, "dash period must be positive")

	d := c.Difficulty
	check(d.InitialLanes >= 3, "initial lanes must be at least 3")
	check(d.MaxLanes >= d.InitialLanes, "max lanes must not be below initial lanes")
	check(d.MaxLanes <= LaneCeiling, "max lanes must be at most 10")
	check(d.SpawnMilestone > 0, "spawn milestone must be positive")
	check(d.SpawnDecay > 0 && d.SpawnDecay < 1, "spawn decay must be in (0,1)")
	check(d.MinSpawnInterval >= 1, "min spawn interval must be at least 1")
	check(d.LaneIntervalGrowth >= 1, "lane interval growth must be at least 1")
	check(d.LaneInterval > 0, "lane interval must be positive")

	t := c.Traffic
	check(t.SpawnInterval >= 1, "spawn interval must be at least 1")
	check(len(t.Colors) > 0, "at least one traffic color is required")
	check(t.CollisionInset >= 0, "collision inset must not be negative")

	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have a positive size")
	check(c.Penalty.PointsPerSecond >= 0, "penalty rate must not be negative")

	if c.Shoulder.Enabled {
		check(c.Shoulder.Width > 0, "shoulder width must be positive")
		check(c.Shoulder.OpenSeconds > 0 && c.Shoulder.ClosedSeconds > 0, "shoulder phases must be positive")
	}

	drivable := pf.Width - 2*pf.GrassWidth
	if c.Shoulder.Enabled {
		drivable -= c.Shoulder.Width
	}
	check(drivable > 0, "road has no drivable width")

	check(c.Frontend.Scale > 0, "window scale must be positive")
	switch c.Frontend.Kind {
	case FrontendDesktop, FrontendTerminal:
	default:
		problems = append(problems, fmt.Sprintf("unknown frontend %q", c.Frontend.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// PenaltyPerFrame is the score lost per frame spent in a penalty zone
func (c *Config) PenaltyPerFrame() float64 {
	return c.Penalty.PointsPerSecond / FramesPerSecond
}

// ShoulderFrames returns the open and closed phase lengths in frames
func (c *Config) ShoulderFrames() (open, closed int) {
	return int(c.Shoulder.OpenSeconds * FramesPerSecond), int(c.Shoulder.ClosedSeconds * FramesPerSecond)
}
