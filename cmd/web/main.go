package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/myrjola/whodunit/internal/ai"
	"github.com/myrjola/whodunit/internal/envstruct"
	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/game"
	"github.com/myrjola/whodunit/internal/logging"
	"github.com/myrjola/whodunit/internal/pprofserver"
	"github.com/myrjola/whodunit/internal/tts"
	"github.com/myrjola/whodunit/internal/voice"
)

type config struct {
	// Addr is the address the server listens on.
	Addr string `env:"WHODUNIT_ADDR" envDefault:"localhost:4000"`
	// PprofPort is the localhost port for the pprof sidecar.
	PprofPort string `env:"WHODUNIT_PPROF_PORT" envDefault:":6060"`
	// ElevenLabsAPIKey authenticates speech synthesis requests.
	ElevenLabsAPIKey string `env:"ELEVENLABS_API_KEY" envDefault:""`
	// ElevenLabsBaseURL points at the speech provider. Overridable for tests.
	ElevenLabsBaseURL string `env:"ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io"`
	// UpstreamTimeoutSeconds bounds each language-model and speech call.
	UpstreamTimeoutSeconds int `env:"WHODUNIT_UPSTREAM_TIMEOUT_SECONDS" envDefault:"30"`
}

type application struct {
	logger          *slog.Logger
	upstreamTimeout time.Duration
	session         *game.Session
	generator       *game.Generator
	conversations   *game.Engine
	speech          *game.Dispatcher
	judge           *game.Judge
}

func newApplication(
	logger *slog.Logger,
	upstreamTimeout time.Duration,
	textGen game.TextGenerator,
	synthesizer game.Synthesizer,
) *application {
	session := game.NewSession(voice.NewSelector(voice.Catalog()))
	return &application{
		logger:          logger,
		upstreamTimeout: upstreamTimeout,
		session:         session,
		generator:       game.NewGenerator(textGen, logger),
		conversations:   game.NewEngine(session, textGen, logger),
		speech:          game.NewDispatcher(session, synthesizer, logger),
		judge:           game.NewJudge(session),
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	// Initialise pprof listening on localhost so that it's not open to the world
	pprofserver.Launch(cfg.PprofPort, logger)

	upstreamTimeout := time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second
	aiClient := ai.NewClient()
	ttsClient := tts.NewClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsBaseURL, upstreamTimeout)

	app := newApplication(logger, upstreamTimeout, aiClient, ttsClient)
	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A missing .env file is fine; the environment may be set by other means.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}
