package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-odds/internal/deck"
	"github.com/lox/blackjack-odds/internal/game"
	"github.com/lox/blackjack-odds/internal/simulator"
)

type CLI struct {
	Hand    string  `arg:"" help:"Player cards in format 'AT' or 'A T 6'" required:""`
	Dealer  string  `short:"d" help:"Dealer up-card (e.g. '6')" required:""`
	Decks   int     `help:"Number of decks in the shoe" default:"6"`
	Bet     float64 `short:"b" help:"Bet size for EV calculation" default:"10"`
	Trials  int     `short:"n" help:"Number of Monte Carlo trials per action" default:"100000"`
	Workers int     `short:"w" help:"Parallel trial workers per action" default:"1"`
	Seed    *int64  `help:"Random seed for reproducible results"`
	Verbose bool    `short:"v" help:"Verbose logging"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	adviceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	playerHand, err := parseHand(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(playerHand) < 2 {
		fmt.Fprintf(os.Stderr, "Player hand must contain at least 2 cards\n")
		ctx.Exit(1)
	}

	upCard, err := deck.ParseRankString(cli.Dealer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dealer up-card: %v\n", err)
		ctx.Exit(1)
	}

	state := simulator.GameState{
		PlayerHand:   playerHand,
		DealerUpCard: upCard,
		NumDecks:     cli.Decks,
		BetSize:      cli.Bet,
		Trials:       cli.Trials,
	}

	engine := simulator.New(simulator.Config{
		Seed:    seed,
		Workers: cli.Workers,
		Logger:  logger,
	})

	startTime := time.Now()
	report, err := engine.ComputeActionOutcomes(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(startTime)

	displayReport(state, report, cli.Trials, duration)
}

func parseHand(s string) (game.Hand, error) {
	ranks, err := deck.ParseRanks(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil, err
	}
	return game.Hand(ranks), nil
}

// reportRow pairs a display label with its report slot
type reportRow struct {
	label   string
	outcome simulator.ProbabilityOutcome
}

func reportRows(report *simulator.ActionOutcomes, splittable bool) []reportRow {
	rows := []reportRow{
		{"stand", report.Stand},
		{"hit x1", report.HitOnce},
		{"hit x2", report.HitTwice},
		{"hit x3", report.HitThrice},
	}
	if splittable {
		rows = append(rows,
			reportRow{"split, hit x1", report.SplitHitOnce},
			reportRow{"split, hit x2", report.SplitHitTwice},
			reportRow{"split, hit x3", report.SplitHitThrice},
		)
	}
	return rows
}

func displayReport(state simulator.GameState, report *simulator.ActionOutcomes, trials int, duration time.Duration) {
	fmt.Printf("%s %s  %s %s\n\n",
		headerStyle.Render("hand"), state.PlayerHand.String(),
		headerStyle.Render("dealer"), state.DealerUpCard.String())

	rows := reportRows(report, game.CanSplit(state.PlayerHand))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("action"),
		headerStyle.Render("ev"),
		headerStyle.Render("win"),
		headerStyle.Render("loss"),
		headerStyle.Render("tie"))

	best := rows[0]
	for _, row := range rows {
		if row.outcome.EstimatedValue > best.outcome.EstimatedValue {
			best = row
		}

		evStyle := winStyle
		if row.outcome.EstimatedValue < 0 {
			evStyle = lossStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			actionStyle.Render(row.label),
			evStyle.Render(fmt.Sprintf("%+.2f", row.outcome.EstimatedValue)),
			winStyle.Render(fmt.Sprintf("%.1f%%", row.outcome.Win*100)),
			lossStyle.Render(fmt.Sprintf("%.1f%%", row.outcome.Loss*100)),
			tieStyle.Render(fmt.Sprintf("%.1f%%", row.outcome.Tie*100)))
	}
	w.Flush()

	fmt.Printf("\n%s %s (%+.2f)\n", adviceStyle.Render("best action:"), best.label, best.outcome.EstimatedValue)
	fmt.Printf("%d trials per action in %v\n", trials, duration.Truncate(time.Millisecond))
}
