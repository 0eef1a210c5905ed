package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"time"

	"github.com/pablu23/contentForm/internal/config"
	"github.com/pablu23/contentForm/internal/database"
	"github.com/pablu23/contentForm/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	portFlag        = flag.Int("port", 8080, "The port on which to host the form")
	serverFlag      = flag.Bool("server", false, "If true dont open Browser with Address")
	configFlag      = flag.String("config", "", "Path to yaml config file")
	outputFlag      = flag.String("output", "", "Directory to write contentV2.json to, working directory if default")
	rememberFlag    = flag.Bool("remember", false, "Remember site, language and image folder between runs")
	databaseFlag    = flag.String("database", "", "Path to sqlite.db file, only used with remember")
	previewSizeFlag = flag.Int("preview", 0, "Size of the cover preview box in pixels")
	debugFlag       = flag.Bool("debug", false, "Activate debug Logs")
	prettyLogsFlag  = flag.Bool("pretty", false, "Pretty print Logs")
	logPathFlag     = flag.String("log", "", "Path to logfile, stderr if default")
)

func main() {
	flag.Parse()

	setupLogging()
	cfg := setupConfig()

	var db *database.Manager
	if *rememberFlag {
		filePath := setupDb()
		mgr := database.NewDatabase(filePath, true, *debugFlag)
		err := mgr.Open()
		if err != nil {
			log.Fatal().Err(err).Str("Path", filePath).Msg("Could not open Database")
		}
		db = &mgr
	}

	mux := http.NewServeMux()
	s := server.New(mux, func(o *server.Options) {
		o.Port = cfg.Port
		o.Sites = cfg.Sites
		o.PreviewSize = cfg.PreviewSize
		o.OutputDir = cfg.OutputDir
		if db != nil {
			o.Store.Set(db)
		}
	})

	setupClient(cfg.Port)
	setupClose(s)
	err := s.Start()
	if err != nil {
		log.Error().Err(err).Msg("Could not start server")
	}
	Close(db)
	if err != nil {
		os.Exit(1)
	}
}

func setupConfig() config.Config {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.ReadConfig(*configFlag)
		if err != nil {
			log.Fatal().Err(err).Str("Path", *configFlag).Msg("Could not read config")
		}
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *portFlag
		case "output":
			cfg.OutputDir = *outputFlag
		case "preview":
			cfg.PreviewSize = *previewSizeFlag
		}
	})

	err := config.ValidateConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	return cfg
}

func setupClient(port int) {
	if !*serverFlag {
		go func() {
			time.Sleep(300 * time.Millisecond)
			err := open(fmt.Sprintf("http://localhost:%d", port))
			if err != nil {
				log.Error().Err(err).Msg("Could not open Browser")
			}
		}()
	}
}

func setupClose(s *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	go func() {
		for range c {
			log.Info().Msg("Interrupted")
			s.Close()
		}
	}()
}

func setupDb() string {
	if *databaseFlag != "" {
		return *databaseFlag
	} else {
		return getDbPath()
	}
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *prettyLogsFlag {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *logPathFlag != "" {
		var console io.Writer = os.Stderr
		if *prettyLogsFlag {
			console = zerolog.ConsoleWriter{Out: os.Stderr}
		}
		log.Logger = log.Output(zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   *logPathFlag,
			MaxAge:     14,
			MaxBackups: 10,
		}))
	}
}

func open(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	args = append(args, url)
	return exec.Command(cmd, args...).Start()
}

func Close(db *database.Manager) {
	if db == nil {
		return
	}
	log.Debug().Msg("Closing Database")
	err := db.Close()
	if err != nil {
		log.Error().Err(err).Msg("Could not close Database")
	}
}
