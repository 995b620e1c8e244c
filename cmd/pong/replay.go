package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a stored recording",
	Long: `Run a stored recording through the simulation without a screen and
print the final state. The same seed and inputs always give the same result.

Examples:
  pong replay 3
  pong recordings   # find recording ids`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	logger := mustLogger(os.Stderr)

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal(logger, "invalid recording id", err)
	}

	store := openStore(logger, true)
	defer store.Close()

	rec, err := store.LoadRecording(id)
	if err != nil {
		fatal(logger, "cannot load recording", err)
	}

	logger.Debug("replaying", "id", id, "seed", rec.Seed, "ticks", rec.Ticks, "inputs", len(rec.Inputs))

	f, err := replay.Play(rec)
	if err != nil {
		fatal(logger, "cannot replay recording", err)
	}

	sum := replay.Summarize(f)
	fmt.Printf("Recording #%d (seed %d, %d inputs)\n", id, rec.Seed, len(rec.Inputs))
	fmt.Println(sum)
}
