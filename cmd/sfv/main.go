package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sfv-go/sfv"
)

var (
	configFilenameFlag string
	valueFlag          string
	asFlag             string
	enableDateFlag     bool
	verbosityTraceFlag bool
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&valueFlag, "value", "", "Field value to parse (reads stdin if empty)")
	flag.StringVar(&asFlag, "as", "item", "Field shape: item, list, or dictionary")
	flag.BoolVar(&enableDateFlag, "enable-date", false, "Accept the RFC 9651 Date extension")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})

	as := asFlag
	enableDate := enableDateFlag

	if configFilenameFlag != "" {
		config, err := getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read config")
		}
		if config.As != "" && !isFlagSet("as") {
			as = config.As
		}
		if !isFlagSet("enable-date") {
			enableDate = config.EnableDate
		}
	}

	value := valueFlag
	if value == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read stdin")
		}
		value = strings.TrimRight(string(raw), "\n")
	}

	opts := sfv.ParseOptions{EnableDate: enableDate}

	canonical, err := sfv.Canonicalize(as, value, opts)
	if err != nil {
		log.Fatal().Err(err).Str("as", as).Msg("Could not parse field value")
	}
	os.Stdout.WriteString(canonical)
	os.Stdout.WriteString("\n")
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
