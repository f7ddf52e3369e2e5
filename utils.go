package main

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/geodb"
	"github.com/9seconds/cartographer/resolvers"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(conf *config) cartolib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
		Jar:     jar,
	}

	return cartolib.NewHTTPClient(httpClient,
		"cartographer/"+version,
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())
}

func makeResolver(fs afero.Fs, conf *config, log *logger) (cartolib.Resolver, error) {
	switch conf.GetResolver() {
	case resolvers.NameLocal:
		db, err := geodb.Open(fs, conf.GetDatabasePath())
		if err != nil {
			return nil, err
		}

		log.DatabaseLoaded(db.Len(), db.Skipped())

		return resolvers.NewLocal(db), nil
	case resolvers.NameRemote:
		return resolvers.NewRemote(makeHTTPClient(conf), conf.GetRemoteURL()), nil
	default:
		// parseConfig validates the value, this is unreachable.
		panic("unsupported resolver " + conf.GetResolver())
	}
}
