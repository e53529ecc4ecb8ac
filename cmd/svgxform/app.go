package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/transform"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "svgxform"
	app.Usage = "Rewrite SVG transform attributes in their shortest form"
	app.Version = transform.Version
	app.Flags = globalFlags()
	app.Before = prepareLogger
	app.Commands = []*cli.Command{
		cmdNormalize(),
		cmdDecompose(),
		cmdArc(),
	}
	return app
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load precision settings from a YAML preset file",
		},
		&cli.IntFlag{
			Name:  "float-precision",
			Value: 3,
			Usage: "Decimal digits kept for angles and translations",
		},
		&cli.IntFlag{
			Name:  "transform-precision",
			Value: 5,
			Usage: "Decimal digits kept for scale factors and the linear part of matrices",
		},
		&cli.BoolFlag{
			Name:  "keep-leading-zero",
			Usage: "Write 0.5 instead of .5",
		},
		&cli.BoolFlag{
			Name:  "no-collapse",
			Usage: "Do not multiply the whole list into one matrix before decomposing",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log debug messages to stderr",
		},
	}
}

// prepareLogger installs a debug-level handler on the library logger
// when --verbose is set.
func prepareLogger(c *cli.Context) error {
	if !c.Bool("verbose") {
		transform.SetLogger(nil)
		return nil
	}
	transform.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return nil
}

// settings is the resolved precision configuration of one run.
// Keys left out of a preset file keep the values of the flags' defaults.
type settings struct {
	FloatPrecision     int  `yaml:"float_precision"`
	TransformPrecision int  `yaml:"transform_precision"`
	StripLeadingZero   bool `yaml:"strip_leading_zero"`
	Collapse           bool `yaml:"collapse"`
}

func defaultSettings() settings {
	return settings{
		FloatPrecision:     3,
		TransformPrecision: 5,
		StripLeadingZero:   true,
		Collapse:           true,
	}
}

// loadPreset decodes a YAML preset over s.
func (s *settings) loadPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}
	return nil
}

func (s settings) options() []transform.Option {
	return []transform.Option{
		transform.WithFloatPrecision(s.FloatPrecision),
		transform.WithTransformPrecision(s.TransformPrecision),
		transform.WithLeadingZero(s.StripLeadingZero),
		transform.WithCollapse(s.Collapse),
	}
}

// resolveSettings applies the preset file first, then lets flags given on
// the command line override it.
func resolveSettings(c *cli.Context) (settings, error) {
	s := defaultSettings()
	if path := c.String("config"); path != "" {
		if err := s.loadPreset(path); err != nil {
			return s, err
		}
	}
	if c.IsSet("float-precision") {
		s.FloatPrecision = c.Int("float-precision")
	}
	if c.IsSet("transform-precision") {
		s.TransformPrecision = c.Int("transform-precision")
	}
	if c.Bool("keep-leading-zero") {
		s.StripLeadingZero = false
	}
	if c.Bool("no-collapse") {
		s.Collapse = false
	}
	return s, nil
}
