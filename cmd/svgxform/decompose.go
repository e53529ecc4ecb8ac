package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/transform"
	"github.com/urfave/cli/v2"
)

func cmdDecompose() *cli.Command {
	return &cli.Command{
		Name:      "decompose",
		Aliases:   []string{"d"},
		Usage:     "Print a matrix as a list of simple transforms",
		ArgsUsage: "a b c d e f",
		Action:    runDecompose,
	}
}

func runDecompose(c *cli.Context) error {
	s, err := resolveSettings(c)
	if err != nil {
		return err
	}
	vals, err := parseNumbers(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(vals) != 6 {
		return fmt.Errorf("decompose: want 6 matrix values, got %d", len(vals))
	}

	opts := s.options()
	ps, err := transform.Decompose(transform.MatrixOf(vals), opts...)
	if err != nil {
		return fmt.Errorf("decompose: %w", err)
	}
	fmt.Fprintln(c.App.Writer, transform.Format(ps, opts...))
	return nil
}

// parseNumbers reads numbers from arguments separated by spaces or commas,
// so "1,0,0,1,0,0" and "1 0 0 1 0 0" are the same input.
func parseNumbers(args []string) ([]float64, error) {
	var vals []float64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", f)
			}
			vals = append(vals, v)
		}
	}
	return vals, nil
}
