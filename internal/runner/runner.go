package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Input              string // input text file to read words from
	Output             string // output file for the generated html
	TopN               int    // number of words to include in the cloud
	Config             string
	CloudConfig        string
	CountOnly          bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Static HTML tag cloud generator for plain-text documents.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "input text file to read words from (stdin if piped)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write generated tag cloud html"),
		flagSet.BoolVarP(&opts.CountOnly, "count-only", "co", false, "print number of distinct words without generating html"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display tagcloud version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.IntVarP(&opts.TopN, "top", "n", 50, "number of words to include in the tag cloud"),
		flagSet.StringVar(&opts.Config, "config", "", `tagcloud cli config file (default '$HOME/.config/tagcloud/config.yaml')`),
		flagSet.StringVarP(&opts.CloudConfig, "cloud-config", "cc", "", `cloud config file overriding separators, font scale and stylesheets (default '$HOME/.config/tagcloud/cloud.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update tagcloud to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic tagcloud update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("tagcloud")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("tagcloud version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current tagcloud version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.TopN < 0 {
		gologger.Warning().Msgf("number of words cannot be negative, using 0")
		opts.TopN = 0
	}

	if opts.Input == "" && !fileutil.HasStdin() {
		gologger.Fatal().Msgf("tagcloud: no input found")
	}
	if opts.Input != "" && !fileutil.FileExists(opts.Input) {
		gologger.Fatal().Msgf("input file %v does not exist", opts.Input)
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
