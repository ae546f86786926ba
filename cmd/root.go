package cmd

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/sound"
	"github.com/they4kman/termsweep/tui"
)

var gameConfig = game.NewGameConfig()
var useDirector = false
var configPath = ""
var logFile = ""
var logLevel = log.InfoLevel

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a Minesweeper game for the terminal, played with the
keyboard or the mouse.

Move with the arrow keys or h/j/k/l, open a cell with space or a left click,
and quit with q, Esc or Ctrl-C.

	termsweep -w 30 -h 16 -m 99

Use the director flag to make the computer play for you
	termsweep --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		closeLog, err := configureLogging(logFile, logLevel)
		if err != nil {
			return err
		}
		defer closeLog()

		return play(config, cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, when given, under the flags the user
// set explicitly
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := gameConfig
	if configPath != "" {
		config = game.NewGameConfig()
		if err := config.LoadConfig(configPath); err != nil {
			return config, err
		}

		flags := cmd.Flags()
		if flags.Changed("width") {
			config.Width = gameConfig.Width
		}
		if flags.Changed("height") {
			config.Height = gameConfig.Height
		}
		if flags.Changed("mines") {
			config.NumMines = gameConfig.NumMines
		}
		if flags.Changed("seed") {
			config.Seed = gameConfig.Seed
		}
		if flags.Changed("idle") {
			config.IdleTimeout = gameConfig.IdleTimeout
		}
		if flags.Changed("blink") {
			config.BlinkPeriod = gameConfig.BlinkPeriod
		}
		if flags.Changed("sound") {
			config.Sound = gameConfig.Sound
		}
	}

	if config.Width < 1 || config.Height < 1 {
		return config, errors.Errorf("invalid board size %dx%d", config.Width, config.Height)
	}
	if config.NumMines < 0 {
		return config, errors.Errorf("invalid number of mines %d", config.NumMines)
	}

	if useDirector {
		config.Director = &random.Director{}
	}
	return config, nil
}

// configureLogging sends log output to path, or nowhere when path is empty;
// the terminal belongs to the game while it runs
func configureLogging(path string, level log.Level) (func(), error) {
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	log.SetOutput(file)
	return func() { file.Close() }, nil
}

func play(config game.GameConfig, out io.Writer) error {
	field := config.CreateField()

	log.WithFields(log.Fields{
		"width":    field.Width(),
		"height":   field.Height(),
		"mines":    field.NumMines(),
		"seed":     field.Seed(),
		"director": config.Director != nil,
	}).Info("starting game")

	options := tui.Options{
		Director:  config.Director,
		HoldAtEnd: true,
		Began:     time.Now(),
	}

	if config.Sound {
		soundManager := sound.NewSoundManager()
		if err := soundManager.Initialize(); err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			defer soundManager.Cleanup()
			options.Cues = soundManager
		}
	}

	screen, err := tui.OpenScreen()
	if err != nil {
		return err
	}

	outcome, err := tui.Run(context.Background(), screen, field, options)
	screen.Fini()
	if err != nil {
		return errors.Wrap(err, "running game")
	}

	fmt.Fprintf(out, "%s %s\n", outcome, field.Status(options.Began))
	return nil
}

type logLevelValue log.Level

func newLogLevelValue(val log.Level, p *log.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return log.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := log.ParseLevel(value)
	if err != nil {
		return fmt.Errorf("invalid log level")
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().DurationVar(&gameConfig.IdleTimeout, "idle", game.DefaultIdleTimeout, "Time between animation ticks while idle")
	rootCmd.Flags().IntVar(&gameConfig.BlinkPeriod, "blink", game.DefaultBlinkPeriod, "Number of ticks in one cursor blink cycle")
	rootCmd.Flags().BoolVar(&gameConfig.Sound, "sound", false, "Play a sound when the game ends")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with game settings; flags override it")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "File to append logs to (default: no logging)")
	rootCmd.Flags().Var(newLogLevelValue(log.InfoLevel, &logLevel), "log-level", "Log level: debug, info, warn or error")
}
