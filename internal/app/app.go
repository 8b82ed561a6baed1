package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MSSkowron/LogUtils/internal/config"
	"github.com/MSSkowron/LogUtils/pkg/logger"
)

// DefaultConfigPath is the configuration file path used when none is set.
const DefaultConfigPath = "logutils.env"

const (
	infoMessage  = "This is an info message."
	errorMessage = "This is an error message."
)

// App configures the process-wide logger and emits a pair of sample
// log messages through it.
type App struct {
	configPath string
	output     io.Writer
}

// Opt is a function that configures an App.
type Opt func(*App)

// WithConfigPath sets the path of the configuration file the App loads.
func WithConfigPath(path string) Opt {
	return func(a *App) {
		a.configPath = path
	}
}

// WithOutput sets the stream log lines are written to, overriding the
// configured one.
func WithOutput(w io.Writer) Opt {
	return func(a *App) {
		a.output = w
	}
}

// New creates an App with the given options.
func New(opts ...Opt) *App {
	a := &App{
		configPath: DefaultConfigPath,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run configures the process-wide logger and logs the sample messages.
// A missing configuration file is not an error; the defaults are used.
func (a *App) Run() error {
	cfg, err := config.Load(a.configPath)
	usingDefaults := false
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.Default()
		usingDefaults = true
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	output := a.output
	if output == nil {
		output, err = consoleStream(cfg.LogOutput)
		if err != nil {
			return fmt.Errorf("failed to configure logger: %w", err)
		}
	}

	logger.SetDefault(logger.New(logger.WithOutput(output), logger.WithLevel(level)))

	if usingDefaults {
		logger.Debug(fmt.Sprintf("Config file %s not found, using defaults", a.configPath))
	}

	logger.Info(infoMessage)
	logger.Error(errorMessage)

	return nil
}

func consoleStream(name string) (io.Writer, error) {
	switch name {
	case "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("unsupported log output %q", name)
	}
}
