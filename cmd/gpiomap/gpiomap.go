package main

import (
	"os"
	"strings"

	"github.com/Alia5/gpiomap/internal/config"
	"github.com/Alia5/gpiomap/internal/configpaths"
	"github.com/Alia5/gpiomap/internal/log"
	"github.com/Alia5/gpiomap/pinmap"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("gpiomap"),
		kong.Description("Map controller GPIO pins to buttons, directions and combos"),
		kong.UsageOnError(),
		// Config files in priority order; flags and env override them.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.Format, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	names, err := cli.Labels.Names()
	ctx.FatalIfErrorf(err)

	journal := log.NewJournal(nil)
	if cli.Log.JournalFile != "" {
		f, err := os.OpenFile(cli.Log.JournalFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open journal file", "file", cli.Log.JournalFile, "error", err)
		} else {
			journal = log.NewJournal(f)
			closeFiles = append(closeFiles, f)
		}
	}

	ctx.Bind(logger)
	ctx.Bind(names)
	ctx.Bind(pinmap.Default())
	ctx.BindTo(journal, (*log.Journal)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("GPIOMAP_CONFIG")
}
