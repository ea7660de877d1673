package main

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid day %q", s)
	}
	return day, nil
}

// readInput reads the puzzle input for day from path, stdin for "-", or the
// configured input directory when path is empty.
func readInput(cmd *cobra.Command, day int, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	if path == "" {
		path = cfg.InputPath(day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read input of day %d", day)
	}
	return string(data), nil
}
