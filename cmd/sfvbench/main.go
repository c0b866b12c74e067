package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sfv-go/sfv/internal/benchstore"
	"github.com/sfv-go/sfv/internal/conformance"
)

var (
	storeDBFlag        string
	verbosityTraceFlag bool
)

func init() {
	flag.StringVar(&storeDBFlag, "db", "", "Path to SQLite run history database (memory store if empty)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})

	var store benchstore.RunStore
	if storeDBFlag != "" {
		sqliteStore, err := benchstore.NewSQLiteStore(storeDBFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not open run history database")
		}
		store = sqliteStore
	} else {
		memStore := benchstore.NewMemStore()
		store = memStore
	}

	cases, err := conformance.LoadAll()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load conformance corpus")
	}

	for _, c := range cases {
		start := time.Now()
		err := conformance.Run(c)
		elapsed := time.Since(start)

		run := benchstore.Run{
			ID:         uuid.NewString(),
			Fixture:    c.Name,
			DurationNs: elapsed.Nanoseconds(),
			RecordedAt: time.Now(),
		}
		if putErr := store.Put(run); putErr != nil {
			log.Warn().Err(putErr).Str("fixture", c.Name).Msg("Could not record run")
		}

		if err != nil {
			log.Warn().Err(err).Str("fixture", c.Name).Msg("Fixture failed")
			continue
		}
		log.Trace().Str("fixture", c.Name).Dur("elapsed", elapsed).Msg("Fixture passed")
	}

	runs, err := store.All()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not read run history")
	}

	var total time.Duration
	for _, run := range runs {
		total += time.Duration(run.DurationNs)
	}
	fmt.Printf("ran %d fixtures in %s\n", len(runs), total)
}
