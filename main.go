package main

import (
	"flag"
	"fmt"
	"hunt/agent"
	"hunt/communication/client"
	"hunt/communication/server"
	"hunt/dracula"
	"hunt/experiments"
	"hunt/game"
	"hunt/meta"
	"hunt/report"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	plays := flag.String("plays", "", "Past-plays log")
	file := flag.String("file", "", "File holding the past-plays log")
	replay := flag.Bool("replay", false, "Replay every Dracula turn of the log and store the decisions")
	sweep := flag.Int("sweep", 0, "Replay the log once for each of this many seeds")
	serve := flag.String("serve", "", "Serve decisions over HTTP on this address, e.g. :8080")
	remote := flag.String("remote", "", "Ask the decision server at this URL instead of deciding locally")
	level := flag.String("level", "", "Log level, overrides the config")
	seed := flag.Uint64("seed", 0, "Fallback seed, overrides the config")
	flag.Parse()

	cfg, err := meta.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setupLogging(cfg)

	if *serve != "" {
		d := agent.New(agent.WithSeed(cfg.Seed), agent.WithFallback(cfg.Fallback))
		if err := server.NewServerCommunicator(d).Start(*serve); err != nil {
			log.Fatal().Err(err).Msg("decision server stopped")
		}
		return
	}

	text, err := readPlays(*plays, *file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read plays")
	}

	switch {
	case *replay:
		if err := experiments.RunReplay(text, cfg); err != nil {
			log.Fatal().Err(err).Msg("replay failed")
		}
	case *sweep > 0:
		runSweep(text, cfg, *sweep)
	case *remote != "":
		decideRemote(text, *remote)
	default:
		decide(text, cfg)
	}
}

func setupLogging(cfg meta.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// readPlays takes the log from -plays, or from -file when -plays is empty.
func readPlays(plays, file string) (string, error) {
	if plays != "" || file == "" {
		return plays, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}

func decide(plays string, cfg meta.Config) {
	state, err := game.NewView(plays)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse plays")
	}
	if state.CurrentPlayer() != game.Dracula {
		log.Warn().Msgf("it is %s's turn, not Dracula's", state.CurrentPlayer())
	}

	d := agent.New(agent.WithSeed(cfg.Seed), agent.WithFallback(cfg.Fallback))
	decision := d.Decide(state)
	fmt.Println(report.Render(decision, dracula.NewView(state)))
}

func runSweep(plays string, cfg meta.Config, n int) {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = cfg.Seed + uint64(i)
	}
	results, err := experiments.RunSeedSweep(plays, cfg.Fallback, seeds)
	if err != nil {
		log.Fatal().Err(err).Msg("seed sweep failed")
	}
	for _, r := range results {
		fmt.Printf("seed %d: %d of %d matched, %d fallbacks\n", r.Seed, r.Matched, r.Decisions, r.Fallbacks)
	}
}

func decideRemote(plays, url string) {
	decision, err := client.NewClientCommunicator(url).Decide(plays)
	if err != nil {
		log.Fatal().Err(err).Msg("remote decision failed")
	}
	fmt.Printf("round %d: %s (%s, sequence %d %s)\n",
		decision.Round, decision.Move, decision.Source, decision.Sequence, decision.Status)
}
