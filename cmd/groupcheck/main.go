// groupcheck runs exponentiation test vectors against every supported group
// and checks that all exponentiation algorithms agree.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/f3rmion/cyclic/group"
)

var (
	app = cli.NewApp()

	ConfigFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "TOML vector file",
		Value: "vectors.toml",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level (debug, info, warn, error); overrides the vector file",
	}
	LogFormatFlag = cli.StringFlag{
		Name:  "logformat",
		Usage: "log format (text, json); overrides the vector file",
	}
	RevealFlag = cli.BoolFlag{
		Name:  "reveal",
		Usage: "log exponent values instead of redacting them",
	}
)

func init() {
	app.Name = "groupcheck"
	app.Usage = "differential checker for group exponentiation"
	app.Flags = []cli.Flag{
		ConfigFlag,
		LogLevelFlag,
		LogFormatFlag,
		RevealFlag,
	}
	app.Action = runCheck
	app.Commands = []cli.Command{
		{
			Name:   "groups",
			Usage:  "list the supported groups",
			Action: listGroups,
		},
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.String("config"))
	if err != nil {
		return err
	}
	if lvl := ctx.String(LogLevelFlag.Name); lvl != "" {
		cfg.Log.Level = lvl
	}
	if format := ctx.String(LogFormatFlag.Name); format != "" {
		cfg.Log.Format = format
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	checked, err := run(cfg, logger, ctx.Bool(RevealFlag.Name))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("%d vectors, %d exponents checked (%s)\n", len(cfg.Vectors), checked, group.Algorithm)
	return nil
}

func listGroups(ctx *cli.Context) error {
	for _, name := range groupNames() {
		fmt.Println(name)
	}
	return nil
}

// run checks every vector of cfg and returns the total number of exponents
// checked. It stops at the first failing vector.
func run(cfg *Config, logger *slog.Logger, reveal bool) (int, error) {
	logger.Info("starting", "vectors", len(cfg.Vectors), "algorithm", group.Algorithm, "compatible", group.Compatible)

	total := 0
	for _, v := range cfg.Vectors {
		log := logger.With("vector", v.Name, "group", v.Group)
		log.Debug("checking", exponentAttr(v.Exponents, reveal))

		n, err := checkVector(v)
		total += n
		if err != nil {
			log.Error("vector failed", "checked", n, "err", err)
			return total, err
		}
		log.Info("vector passed", "checked", n)
	}
	return total, nil
}
