package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/har"
	"github.com/9seconds/cartographer/render"
	"github.com/9seconds/cartographer/resolvers"
)

const version = "0.1.0"

var (
	app = kingpin.New(
		"cartographer",
		"Draws a map of outbound requests of a captured browser network trace.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("CARTOGRAPHER_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("CARTOGRAPHER_CONFIG").
			Required().
			String()

	mapCommand = app.Command("map", "Render a map out of a HAR file.")
	mapHarPath = mapCommand.Arg("har-path", "Path to the HAR file.").
			Required().
			String()
	mapOutput = mapCommand.Flag("output", "Path of the rendered HTML map.").
			Short('o').
			Default("map.html").
			String()

	serveCommand = app.Command("serve", "Serve the resolver as an HTTP API.")
)

func main() {
	app.Version(version)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	conf, err := parseConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	log := newLogger(*debug)
	fs := afero.NewOsFs()

	rootCtx, cancel := makeRootContext()
	defer cancel()

	// An unavailable database must stop the program before any
	// query is attempted.
	resolver, err := makeResolver(fs, conf, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	resolver = cartolib.NewCachingResolver(resolver, conf.GetCacheSize())

	switch command {
	case mapCommand.FullCommand():
		err = mainMap(rootCtx, fs, conf, resolver, log)
	case serveCommand.FullCommand():
		err = mainServe(rootCtx, conf, resolver, log)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func mainMap(ctx context.Context,
	fs afero.Fs,
	conf *config,
	resolver cartolib.Resolver,
	log *logger) error {
	file, err := har.Parse(fs, *mapHarPath)
	if err != nil {
		return err
	}

	sites, skipped := har.Aggregate(ctx, file, net.DefaultResolver)
	for _, host := range skipped {
		log.DNSSkip(host)
	}

	origin := cartolib.GeoPoint{}

	if addr, err := resolvers.SelfIP(ctx, makeHTTPClient(conf)); err != nil {
		log.SelfIPError(err)
	} else if point, err := resolver.Resolve(ctx, addr); err != nil {
		log.LookupError(addr, resolver.Name(), err)
	} else {
		origin = point
	}

	located := har.Locate(ctx, resolver, log, sites)

	output, err := fs.Create(*mapOutput)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}

	defer output.Close()

	return render.Render(output, *mapHarPath, origin, located)
}

func mainServe(ctx context.Context,
	conf *config,
	resolver cartolib.Resolver,
	log *logger) error {
	var handler http.Handler = cartolib.NewHTTPHandler(resolver, log)

	if conf.GetAuthUser() != "" || conf.GetAuthPassword() != "" {
		handler = &basicAuthMiddleware{
			handler:  handler,
			user:     []byte(conf.GetAuthUser()),
			password: []byte(conf.GetAuthPassword()),
		}
	}

	srv := &http.Server{
		Addr:    conf.GetListen(),
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background()) // nolint: errcheck
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
