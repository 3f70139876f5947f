package main

import (
	"fgrid/config"
	"fgrid/grid"
	"fgrid/importing"
	"fgrid/overlay"
	"fgrid/web"
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging        string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version        VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	DisableOverlay bool        `help:"Disable the overlay engine, cropping then falls back to centroid culling."`
	Grid           struct {
		Input  string `help:"The input file. Either .geojson, .json, .osm or .pbf." placeholder:"<input-file>" arg:"" type:"existingfile"`
		Output string `help:"The output folder for the grid cell files." short:"o" default:"fgrid-output"`
		Policy string `help:"The grid policy, e.g. 'cell_size=250;culling_technique=crop'." short:"p"`
	} `cmd:"" help:"Distributes the features of the given input file over grid cell files."`
	Stats struct {
		Input  string `help:"The input file. Either .geojson, .json, .osm or .pbf." placeholder:"<input-file>" arg:"" type:"existingfile"`
		Policy string `help:"The grid policy, e.g. 'cell_size=250'." short:"p"`
	} `cmd:"" help:"Prints how many features each grid cell would receive."`
	Serve struct {
		Port        string `help:"The port the server listens on." default:"8080"`
		SslCertFile string `help:"The certificate file to serve HTTPS."`
		SslKeyFile  string `help:"The key file to serve HTTPS."`
	} `cmd:"" help:"Starts the HTTP server offering the gridding API."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("fgrid"),
		kong.Description("A tool to distribute 2D geographic features over a regular grid of cells."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	var engine overlay.Engine
	if !cli.DisableOverlay {
		engine = overlay.NewGeomEngine()
	}

	switch ctx.Command() {
	case "grid <input>":
		policy, err := parsePolicy(cli.Grid.Policy)
		sigolo.FatalCheck(err)

		err = importing.ImportFile(cli.Grid.Input, cli.Grid.Output, policy, engine)
		sigolo.FatalCheck(err)
	case "stats <input>":
		policy, err := parsePolicy(cli.Stats.Policy)
		sigolo.FatalCheck(err)

		counts, gridder, err := importing.Stats(cli.Stats.Input, policy)
		sigolo.FatalCheck(err)

		sigolo.Infof("Grid covers %v using %d cells", gridder.Bounds(), gridder.NumCells())
		fmt.Println(importing.FormatCellCounts(counts))
	case "serve":
		if cli.Serve.SslCertFile != "" && cli.Serve.SslKeyFile != "" {
			web.StartServerTls(cli.Serve.Port, cli.Serve.SslCertFile, cli.Serve.SslKeyFile, engine)
		} else {
			web.StartServer(cli.Serve.Port, engine)
		}
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func parsePolicy(fragment string) (grid.Policy, error) {
	if strings.TrimSpace(fragment) == "" {
		return grid.Policy{}, nil
	}

	conf, err := config.Parse(fragment)
	if err != nil {
		return grid.Policy{}, err
	}

	return grid.PolicyFromConfig(conf), nil
}
