package main

import (
	"bufio"
	"fmt"

	"github.com/gogpu/transform"
	"github.com/urfave/cli/v2"
)

func cmdNormalize() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Aliases:   []string{"n"},
		Usage:     "Print the shortest form of each transform attribute",
		ArgsUsage: "[transform...]",
		Description: `Each argument is one transform attribute value. Without arguments the
attributes are read from stdin, one per line. Text that is not a valid
transform list is printed unchanged.`,
		Action: runNormalize,
	}
}

func runNormalize(c *cli.Context) error {
	s, err := resolveSettings(c)
	if err != nil {
		return err
	}
	opts := s.options()

	if c.Args().Present() {
		for _, text := range c.Args().Slice() {
			fmt.Fprintln(c.App.Writer, transform.Normalize(text, opts...))
		}
		return nil
	}

	sc := bufio.NewScanner(c.App.Reader)
	for sc.Scan() {
		fmt.Fprintln(c.App.Writer, transform.Normalize(sc.Text(), opts...))
	}
	return sc.Err()
}
