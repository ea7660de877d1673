package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/monkeymap"
	"github.com/katalvlaran/aoc22/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days that have a solver",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var solveCmd = &cobra.Command{
	Use:   "solve DAY [FILE]",
	Short: "Solve one day",
	Long: `Solves one day and prints both parts.

FILE defaults to dayNN.txt in the input directory; "-" reads stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSolve,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day that has an input file, concurrently",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

var traceFlat bool

var traceCmd = &cobra.Command{
	Use:   "trace [FILE]",
	Short: "Draw the final position of the day 22 walk",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTrace,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	for _, day := range reg.Days() {
		fmt.Fprintln(cmd.OutOrStdout(), day)
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	if _, err := reg.Lookup(day); err != nil {
		return err
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	}
	input, err := readInput(cmd, day, path)
	if err != nil {
		return err
	}

	ans, err := reg.Solve(day, input, dayOptions(day)...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatAnswer(day, ans))
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, err := newRegistry()
	if err != nil {
		return err
	}
	inputs := make(map[int]string)
	for _, day := range reg.Days() {
		path := cfg.InputPath(day)
		if _, err := os.Stat(path); err != nil {
			logger.Debug("no input", zap.Int("day", day), zap.String("path", path))
			continue
		}
		input, err := readInput(cmd, day, path)
		if err != nil {
			return err
		}
		inputs[day] = input
	}
	if len(inputs) == 0 {
		return errors.Errorf("no inputs found in %s", cfg.InputDir)
	}

	// One registry holds every day, each solver wrapped with its configured options.
	byDay := puzzle.NewRegistry()
	for day := range inputs {
		s, _ := reg.Lookup(day)
		if err := byDay.Register(day, withDayOptions(day, s)); err != nil {
			return err
		}
	}
	answers, err := byDay.SolveAll(ctx, inputs, puzzle.WithLogger(logger))
	if err != nil {
		return err
	}

	days := make([]int, 0, len(answers))
	for day := range answers {
		days = append(days, day)
	}
	sort.Ints(days)
	for _, day := range days {
		fmt.Fprintln(cmd.OutOrStdout(), formatAnswer(day, answers[day]))
	}
	return nil
}

// withDayOptions prepends the configured options of day to every call of s.
func withDayOptions(day int, s puzzle.Solver) puzzle.Solver {
	return func(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
		return s(input, append(dayOptions(day), opts...)...)
	}
}

func runTrace(cmd *cobra.Command, args []string) error {
	const day = 22
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	input, err := readInput(cmd, day, path)
	if err != nil {
		return err
	}
	net, route, err := monkeymap.SplitInput(input)
	if err != nil {
		return err
	}
	b, err := monkeymap.ParseBoard(net)
	if err != nil {
		return err
	}
	instructions, err := monkeymap.ParsePath(route)
	if err != nil {
		return err
	}

	surface := monkeymap.NewFlat(b)
	if !traceFlat {
		faceSize := cfg.Params(day)[monkeymap.FaceSizeParam]
		if surface, err = monkeymap.NewCube(b, faceSize, logger); err != nil {
			return err
		}
	}
	end, err := monkeymap.Trace(surface, instructions)
	if err != nil {
		return err
	}

	facing, err := monkeymap.Facing(end.Dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, b.Render(end.Pos, end.Dir))
	fmt.Fprintln(out, markerStyle.Render(fmt.Sprintf("%v: row %d, column %d, facing %d",
		surface.Topology(), end.Pos.Y+1, end.Pos.X+1, facing)))
	return nil
}
