package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/transform"
	"github.com/tdewolff/minify/v2"
	"github.com/urfave/cli/v2"
)

func cmdArc() *cli.Command {
	return &cli.Command{
		Name:      "arc",
		Usage:     "Apply a matrix to the parameters of an arc path segment",
		ArgsUsage: "rx ry rotation large-arc sweep x y",
		Description: `Prints the re-fitted arc parameters in the same order. The end point is
treated as relative and transformed without the translation, unless
--absolute is given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "matrix",
				Aliases: []string{"m"},
				Value:   "1,0,0,1,0,0",
				Usage:   "Matrix values a,b,c,d,e,f",
			},
			&cli.BoolFlag{
				Name:  "absolute",
				Usage: "Transform the end point with the translation applied",
			},
		},
		Action: runArc,
	}
}

func runArc(c *cli.Context) error {
	s, err := resolveSettings(c)
	if err != nil {
		return err
	}
	mvals, err := parseNumbers([]string{c.String("matrix")})
	if err != nil {
		return err
	}
	if len(mvals) != 6 {
		return fmt.Errorf("arc: want 6 matrix values, got %d", len(mvals))
	}
	vals, err := parseNumbers(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(vals) != 7 {
		return fmt.Errorf("arc: want 7 arc parameters, got %d", len(vals))
	}

	m := transform.MatrixOf(mvals)
	arc := transform.TransformArc(transform.Arc{
		RX:       vals[0],
		RY:       vals[1],
		Rotation: vals[2],
		LargeArc: vals[3] != 0,
		Sweep:    vals[4] != 0,
		X:        vals[5],
		Y:        vals[6],
	}, m)

	end := transform.Pt(arc.X, arc.Y)
	if c.Bool("absolute") {
		end = m.TransformPoint(end)
	} else {
		end = m.TransformVector(end)
	}

	out := []string{
		formatNumber(arc.RX, s),
		formatNumber(arc.RY, s),
		formatNumber(arc.Rotation, s),
		formatFlag(arc.LargeArc),
		formatFlag(arc.Sweep),
		formatNumber(end.X, s),
		formatNumber(end.Y, s),
	}
	fmt.Fprintln(c.App.Writer, strings.Join(out, " "))
	return nil
}

func formatNumber(v float64, s settings) string {
	str := strconv.FormatFloat(transform.Round(v, s.FloatPrecision), 'f', -1, 64)
	if s.StripLeadingZero {
		str = string(minify.Decimal([]byte(str), 0))
	}
	return str
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
