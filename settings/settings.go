package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// WindowSettings configures the host window.
type WindowSettings struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// CaptureCursor hides the cursor and locks it to the window so mouse
	// movement drives the camera continuously.
	CaptureCursor bool `yaml:"capture_cursor"`
}

// EngineSettings configures the host runtime.
type EngineSettings struct {
	// TickRate is the simulation rate in ticks per second.
	TickRate float64 `yaml:"tick_rate"`

	// Profiling enables periodic TPS and memory stats logging.
	Profiling bool `yaml:"profiling"`
}

// ControllerSettings holds the player controller tunables.
// Angles are expressed in degrees; the consumer converts to radians.
type ControllerSettings struct {
	LookSensitivity float32 `yaml:"look_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	MoveSpeed       float32 `yaml:"move_speed"`

	// PitchDegrees and Distance are the starting camera elevation and orbit
	// radius. Both are clamped into the configured bounds on the first tick.
	PitchDegrees float32 `yaml:"pitch_degrees"`
	Distance     float32 `yaml:"distance"`

	MinPitchDegrees float32 `yaml:"min_pitch_degrees"`
	MaxPitchDegrees float32 `yaml:"max_pitch_degrees"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
}

// Settings is the root of the settings file schema.
type Settings struct {
	Window     WindowSettings     `yaml:"window"`
	Engine     EngineSettings     `yaml:"engine"`
	Controller ControllerSettings `yaml:"controller"`
}

// DefaultSettings returns the settings used when a field is absent from the
// settings file. Boolean fields default to false and must be set explicitly.
//
// Returns:
//   - Settings: the default configuration
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Title:  "Orbit Scene",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineSettings{
			TickRate: 60,
		},
		Controller: ControllerSettings{
			LookSensitivity: 1.0,
			ZoomSensitivity: 10.0,
			MoveSpeed:       10.0,
			PitchDegrees:    30.0,
			Distance:        20.0,
			MinPitchDegrees: 1.0,
			MaxPitchDegrees: 179.0,
			MinDistance:     5.0,
			MaxDistance:     30.0,
		},
	}
}

// Load reads and parses the settings file at path, merging defaults for any
// absent fields and validating the result.
//
// Parameters:
//   - path: the settings file location
//
// Returns:
//   - *Settings: the merged, validated settings
//   - error: error if the file cannot be read, parsed, or validated
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Parse unmarshals raw settings data, merging defaults for any absent fields
// and validating the result.
//
// Parameters:
//   - data: raw YAML settings
//
// Returns:
//   - *Settings: the merged, validated settings
//   - error: error if the data cannot be parsed or validated
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyDefaults fills zero-valued fields from DefaultSettings.
func (s *Settings) applyDefaults() {
	d := DefaultSettings()

	s.Window.Title = common.Coalesce(s.Window.Title, d.Window.Title)
	s.Window.Width = common.Coalesce(s.Window.Width, d.Window.Width)
	s.Window.Height = common.Coalesce(s.Window.Height, d.Window.Height)

	s.Engine.TickRate = common.Coalesce(s.Engine.TickRate, d.Engine.TickRate)

	s.Controller.LookSensitivity = common.Coalesce(s.Controller.LookSensitivity, d.Controller.LookSensitivity)
	s.Controller.ZoomSensitivity = common.Coalesce(s.Controller.ZoomSensitivity, d.Controller.ZoomSensitivity)
	s.Controller.MoveSpeed = common.Coalesce(s.Controller.MoveSpeed, d.Controller.MoveSpeed)
	s.Controller.PitchDegrees = common.Coalesce(s.Controller.PitchDegrees, d.Controller.PitchDegrees)
	s.Controller.Distance = common.Coalesce(s.Controller.Distance, d.Controller.Distance)
	s.Controller.MinPitchDegrees = common.Coalesce(s.Controller.MinPitchDegrees, d.Controller.MinPitchDegrees)
	s.Controller.MaxPitchDegrees = common.Coalesce(s.Controller.MaxPitchDegrees, d.Controller.MaxPitchDegrees)
	s.Controller.MinDistance = common.Coalesce(s.Controller.MinDistance, d.Controller.MinDistance)
	s.Controller.MaxDistance = common.Coalesce(s.Controller.MaxDistance, d.Controller.MaxDistance)
}

// Validate checks the settings for values the engine cannot run with.
//
// Returns:
//   - error: error describing the first invalid field found, or nil
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Engine.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", s.Engine.TickRate)
	}

	c := s.Controller
	if c.MinPitchDegrees <= 0 || c.MaxPitchDegrees >= 180 {
		return fmt.Errorf("pitch bounds must stay within (0, 180) degrees, got [%v, %v]", c.MinPitchDegrees, c.MaxPitchDegrees)
	}
	if c.MinPitchDegrees >= c.MaxPitchDegrees {
		return fmt.Errorf("min_pitch_degrees %v must be below max_pitch_degrees %v", c.MinPitchDegrees, c.MaxPitchDegrees)
	}
	if c.MinDistance <= 0 {
		return fmt.Errorf("min_distance must be positive, got %v", c.MinDistance)
	}
	if c.MinDistance >= c.MaxDistance {
		return fmt.Errorf("min_distance %v must be below max_distance %v", c.MinDistance, c.MaxDistance)
	}
	if c.ZoomSensitivity <= 0 {
		return fmt.Errorf("zoom_sensitivity must be positive, got %v", c.ZoomSensitivity)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive, got %v", c.MoveSpeed)
	}
	return nil
}
