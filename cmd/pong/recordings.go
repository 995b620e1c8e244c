package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagLimit  int
	flagDelete int64
	flagPlain  bool
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "List stored recordings",
	Long: `List the most recent recordings, newest first.

On a terminal the list opens in an interactive browser: Enter replays the
selected recording, D deletes it. Use --plain, or pipe the output, for a
plain listing.

Examples:
  pong recordings
  pong recordings --limit 5 --plain
  pong recordings --delete 3`,
	Args: cobra.NoArgs,
	Run:  runRecordings,
}

func init() {
	recordingsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recordings to list")
	recordingsCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the recording with this id")
	recordingsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing even on a terminal")
}

func runRecordings(_ *cobra.Command, _ []string) {
	logger := mustLogger(os.Stderr)

	store := openStore(logger, true)
	defer store.Close()

	if flagDelete != 0 {
		if err := store.DeleteRecording(flagDelete); err != nil {
			fatal(logger, "cannot delete recording", err)
		}
		fmt.Printf("Deleted recording #%d\n", flagDelete)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunRecordings(store, width, height); err != nil {
			fatal(logger, "cannot run browser", err)
		}
		return
	}

	entries, err := store.Recordings(flagLimit)
	if err != nil {
		fatal(logger, "cannot list recordings", err)
	}

	if len(entries) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Play 'pong play --record' to keep a session.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-8s  %s\n", "ID", "Via", "Score", "Rounds", "Ticks", "Date")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-8s  %s\n", "--", "---", "-----", "------", "-----", "----")

	for _, e := range entries {
		score := fmt.Sprintf("%d - %d", e.Score2, e.Score1)
		fmt.Printf("  %-5d  %-7s  %-7s  %-6d  %-8d  %s\n",
			e.ID, e.Frontend, score, e.Rounds, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("%d sessions, %d ticks played, best rally %d\n", stats.Sessions, stats.TotalTicks, stats.BestRally)
	}
}
