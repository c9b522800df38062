package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/chrissnell/solargeometry/internal/log"
	"github.com/chrissnell/solargeometry/pkg/config"
	"github.com/chrissnell/solargeometry/pkg/responseformat"
	"github.com/chrissnell/solargeometry/pkg/solar"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	cfgFile    string
	cfgBackend string
	debug      bool
	format     string
	latitude   float64
	longitude  float64

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "solargeom",
		Short:         "Solar geometry calculator",
		Long:          "Computes solar time, declination, zenith, azimuth, air mass and daily profiles\nfor a location and local standard time using Spencer's (1971) formulas.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "Path to configuration file (built-in defaults when empty)")
	flags.StringVar(&opts.cfgBackend, "config-backend", "yaml", "Configuration backend type: 'yaml' for strict YAML files, 'viper' for any viper format plus SOLARGEOM_* environment variables")
	flags.BoolVar(&opts.debug, "debug", false, "Turn on debugging output")
	flags.StringVarP(&opts.format, "format", "o", "text", "Output format: text, json, yaml, msgpack or csv")
	flags.Float64Var(&opts.latitude, "lat", config.DefaultLatitude, "Latitude in degrees, north positive (overrides configuration)")
	flags.Float64Var(&opts.longitude, "lon", config.DefaultLongitude, "Longitude in degrees, WEST positive (overrides configuration)")

	rootCmd.AddCommand(snapshotCmd(opts))
	rootCmd.AddCommand(noonCmd(opts))
	rootCmd.AddCommand(airMassCmd(opts))
	rootCmd.AddCommand(profileCmd(opts))

	return rootCmd
}

func loadConfig(cfgFile, cfgBackend string) (*config.ConfigData, error) {
	var provider config.ConfigProvider

	filename := cfgFile
	if filename != "" {
		filename, _ = filepath.Abs(cfgFile)
	}

	switch cfgBackend {
	case "yaml":
		if filename == "" {
			d := config.Defaults()
			return &d, nil
		}
		provider = config.NewYAMLProvider(filename)
	case "viper":
		provider = config.NewViperProvider(filename)
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'viper'", cfgBackend)
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config. Did you pass the --config flag? Run with -h for help: %w", err)
	}

	return cfgData, nil
}

// newEngine loads the configuration, applies the --lat/--lon overrides and
// builds an engine that reports advisories on stderr.
func (o *options) newEngine(cmd *cobra.Command) (*solar.Engine, error) {
	cfgData, err := loadConfig(o.cfgFile, o.cfgBackend)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lat") {
		cfgData.Latitude = o.latitude
	}
	if flags.Changed("lon") {
		cfgData.Longitude = o.longitude
	}

	log.Debugw("loaded configuration",
		"file", o.cfgFile,
		"backend", o.cfgBackend,
		"latitude", cfgData.Latitude,
		"longitude", cfgData.Longitude,
		"local_standard_time", cfgData.LocalStandardTime,
	)

	return solar.NewEngine(*cfgData,
		solar.WithLogger(log.GetSugaredLogger()),
		solar.WithAdvisoryHandler(func(a solar.Advisory) {
			fmt.Fprintf(o.stderr, "warning: %s\n", a)
			log.Debugw("advisory raised", "code", string(a.Code), "input", a.Input)
		}),
	)
}

// write encodes data in the selected non-text format. csvData is what CSV
// output encodes and may be nil when the command has no tabular form.
func (o *options) write(data any, csvData any) error {
	format, err := responseformat.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if format == responseformat.CSV {
		if csvData == nil {
			return fmt.Errorf("csv output is not available for this command")
		}
		data = csvData
	}
	return responseformat.NewFormatter().Write(o.stdout, format, data)
}

func (o *options) textOutput() bool {
	return o.format == "" || o.format == "text"
}
