package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/tagcloud"
	"github.com/projectdiscovery/tagcloud/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	genOpts := tagcloud.Options{
		Source: cliOpts.Input,
		TopN:   cliOpts.TopN,
	}

	if cliOpts.CloudConfig != "" {
		config, err := tagcloud.NewConfig(cliOpts.CloudConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.CloudConfig, err)
		}
		if config.Separators != "" {
			genOpts.Separators = config.Separators
		}
		if config.MinFont != 0 || config.MaxFont != 0 {
			genOpts.MinFont = config.MinFont
			genOpts.MaxFont = config.MaxFont
		}
		if len(config.Stylesheets) > 0 {
			genOpts.Stylesheets = config.Stylesheets
		}
	}

	g, err := tagcloud.New(&genOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to parse tagcloud config got %v", err)
	}

	// the whole input is consumed and closed before the output is created,
	// so a failed run never leaves a partial document behind
	input := getInputReader(cliOpts.Input)
	if err := g.CountFrom(input); err != nil {
		closeInput(input, cliOpts.Input)
		gologger.Fatal().Msgf("failed to read input %v got %v", genOpts.Source, err)
	}
	closeInput(input, cliOpts.Input)

	gologger.Verbose().Msgf("counted %v distinct words in %v", g.DistinctWords(), genOpts.Source)

	if cliOpts.CountOnly {
		gologger.Info().Msgf("Distinct words in %v: %v", genOpts.Source, g.DistinctWords())
		return
	}

	output := getOutputWriter(cliOpts.Output)
	if err := g.ExecuteWithWriter(output); err != nil {
		closeOutput(output, cliOpts.Output)
		gologger.Fatal().Msgf("failed to write output to file got %v", err)
	}
	closeOutput(output, cliOpts.Output)
}

// getInputReader returns the input file reader, or stdin when piped
func getInputReader(inputPath string) io.ReadCloser {
	if inputPath != "" {
		fs, err := os.Open(inputPath)
		if err != nil {
			gologger.Fatal().Msgf("failed to open input file %v got %v", inputPath, err)
		}
		return fs
	}
	return os.Stdin
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeInput closes the input reader if it's a file
func closeInput(input io.ReadCloser, inputPath string) {
	if inputPath == "" {
		return
	}
	if err := input.Close(); err != nil {
		gologger.Error().Msgf("failed to close input %v got %v", inputPath, err)
	}
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath == "" {
		return
	}
	if closer, ok := output.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			gologger.Error().Msgf("failed to close output %v got %v", outputPath, err)
		}
	}
}
