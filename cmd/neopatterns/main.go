package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/neopatterns/internal/button"
	"github.com/callebjorkell/neopatterns/internal/config"
	"github.com/callebjorkell/neopatterns/internal/neopixel"
	"github.com/callebjorkell/neopatterns/internal/player"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("neopatterns", "Pattern player for addressable LED strips")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	run        = app.Command("run", "Play the configured patterns until interrupted")
	configFile = run.Flag("config", "Configuration file to use.").Short('c').Default("neopatterns.yaml").String()
	colors     = app.Command("colors", "List the known colors.")
	version    = app.Command("version", "Show current version.")
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&colorFormatter{})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case run.FullCommand():
		if err := startPlayer(*configFile); err != nil {
			log.Fatal(err)
		}
	case colors.FullCommand():
		listColors(os.Stdout)
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func startPlayer(configFile string) error {
	conf, err := config.Read(configFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	channels := make([]neopixel.ChannelConfig, 0, len(conf.Strips))
	for _, s := range conf.Strips {
		ch, err := s.Channel()
		if err != nil {
			return fmt.Errorf("strip %s: %w", s.Name, err)
		}
		channels = append(channels, ch)
	}

	dev, err := neopixel.Open(channels...)
	if err != nil {
		return err
	}
	defer dev.Close()

	tracks, err := newTracks(conf, dev)
	if err != nil {
		return err
	}

	var events <-chan button.Event
	if conf.Button != "" {
		events, err = button.Listen(ctx, conf.Button)
		if err != nil {
			return err
		}
	}

	player.New(tracks...).Run(ctx, neopixel.NewSystemClock(), conf.TickInterval(), events)
	log.Info("Done...")
	return nil
}

func newTracks(conf *config.Config, dev *neopixel.Device) ([]*player.Track, error) {
	tracks := make([]*player.Track, 0, len(conf.Strips))
	for i, s := range conf.Strips {
		playlist, err := s.Playlist()
		if err != nil {
			return nil, fmt.Errorf("strip %s: %w", s.Name, err)
		}
		action, err := player.ParseAction(s.OnComplete)
		if err != nil {
			return nil, fmt.Errorf("strip %s: %w", s.Name, err)
		}
		tracks = append(tracks, player.NewTrack(s.Name, dev.Channel(i), playlist, action))
	}
	return tracks, nil
}

func listColors(w io.Writer) {
	for _, k := range neopixel.KnownColors {
		fmt.Fprintf(w, "%-8s #%06x\n", k, k.Value())
	}
}
