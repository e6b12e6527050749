// Package main is reduce, a small ISO builder front end. It declares its
// commands with cmdr and remembers the options of the last run in a YAML or
// TOML config file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/toejough/cmdr"
	"github.com/toejough/cmdr/internal/config"
	"github.com/toejough/cmdr/internal/sys"
)

func main() {
	os.Exit(run(cmdr.OSEnv{}, config.DefaultDirs(appName)))
}

// unexported constants.
const (
	appName       = "reduce"
	appVersion    = "0.1.0"
	configPattern = "reduce.{yml,yaml,toml}"
	defaultConfig = "reduce.yml"
)

// run parses env's arguments, reports what would be done and records the
// parsed options in the config file found in dirs. Parse failures and help
// requests are reported by cmdr through env; run returns their exit code.
func run(env cmdr.RunEnv, dirs []string) int {
	cli, err := newCLI(env)
	if err != nil {
		return 1
	}

	res, err := cli.Parse()
	if err != nil {
		var exitErr cmdr.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}

	out := env.Stdout()
	logger := newLogger(out, res.Global().Flag("verbose"))

	for _, name := range res.Commands() {
		vals, _ := res.Command(name)
		describe(out, name, vals)
	}

	path, err := configPath(res.Global().String("config"), dirs)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	err = remember(path, res)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	logger.Debug("options saved", "path", path)

	return 0
}

func newCLI(env cmdr.RunEnv) (*cmdr.Commander, error) {
	cli := cmdr.New(
		cmdr.WithApp(appName),
		cmdr.WithVersion(appVersion),
		cmdr.WithEnv(env),
		cmdr.WithExamples("Build the personal profile: ./reduce build personal\n"+
			"Clean then build: ./reduce clean iso,initramfs build personal\n"),
	)

	err := cli.AddGlobal(
		cmdr.Opt("-v|--verbose", "Log what reduce is doing"),
		cmdr.Opt("--config=FILE", "Config file to record the run in", cmdr.Typed(cmdr.String)),
	)
	if err != nil {
		return nil, err
	}

	err = cli.Add("build", "Build an ISO for the given profile",
		cmdr.Opt("", "Profile to build"),
		cmdr.Opt("-d|--debug", "Keep the build tree for inspection"),
		cmdr.Examples("Build with debug: ./reduce build personal --debug\n"),
	)
	if err != nil {
		return nil, err
	}

	err = cli.Add("clean", "Remove build artifacts",
		cmdr.Opt("", "Artifacts to clean", cmdr.Typed(cmdr.StringList), cmdr.Allowed("all", "initramfs", "iso")),
		cmdr.Opt("-m|--min=N", "Minimum clean level", cmdr.Typed(cmdr.Integer), cmdr.Allowed(1, 2, 3)),
	)
	if err != nil {
		return nil, err
	}

	err = cli.Add("publish", "Publish a built ISO",
		cmdr.Opt("", "Profile to publish"),
		cmdr.Opt("-t|--target=DEST", "Where to publish", cmdr.Typed(cmdr.String), cmdr.Allowed("s3", "local")),
	)
	if err != nil {
		return nil, err
	}

	return cli, nil
}

func configPath(explicit string, dirs []string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	path, err := config.Locate(configPattern, dirs...)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, config.ErrNotFound) && len(dirs) > 0:
		return filepath.Join(dirs[len(dirs)-1], defaultConfig), nil
	default:
		return "", err
	}
}

func describe(out io.Writer, name string, vals cmdr.Values) {
	switch name {
	case "build":
		fmt.Fprintf(out, "building profile %s (debug %t)\n", vals.String("build0"), vals.Flag("debug"))
	case "clean":
		fmt.Fprintf(out, "cleaning %v at level %d\n", vals.Strings("clean0"), vals.Int("min"))
	case "publish":
		target := vals.String("target")
		if target == "" {
			target = "local"
		}

		fmt.Fprintf(out, "publishing profile %s to %s\n", vals.String("publish0"), target)
	}
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// remember records the parsed options under one section per command, plus
// who ran them.
func remember(path string, res *cmdr.Result) error {
	store, err := config.Load(path)
	if err != nil {
		return err
	}

	for section, values := range res.Map() {
		store.Merge(section, values)
	}

	store.Set("user", sys.UserName())

	return store.Save()
}
