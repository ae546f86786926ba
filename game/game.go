package game

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	NumMines int `yaml:"mines"`

	Seed int64 `yaml:"seed"`

	IdleTimeout time.Duration `yaml:"idle_timeout"`
	BlinkPeriod int           `yaml:"blink_period"`

	// Play sound cues when the game ends
	Sound bool `yaml:"sound"`

	Director Director `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		NumMines:    DefaultNumMines,
		IdleTimeout: DefaultIdleTimeout,
		BlinkPeriod: DefaultBlinkPeriod,
		Director:    nil,
	}
}

// LoadConfig reads YAML from path over the values already in config. Keys
// missing from the file keep their current value.
func (config *GameConfig) LoadConfig(path string) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (config GameConfig) CreateField() *MineField {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	field := CreateField(FieldConfig{
		Width:       config.Width,
		Height:      config.Height,
		NumMines:    config.NumMines,
		Seed:        seed,
		IdleTimeout: config.IdleTimeout,
		BlinkPeriod: config.BlinkPeriod,
	})

	if config.Director != nil {
		config.Director.Init(field)
	}

	return field
}
