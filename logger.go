package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/9seconds/cartographer/cartolib"
)

type logger struct {
	log zerolog.Logger
}

func (l *logger) LookupError(addr, resolver string, err error) {
	l.log.Error().
		Str("resolver", resolver).
		Str("addr", addr).
		Err(err).
		Msg("cannot resolve address")
}

func (l *logger) LookupOK(addr, resolver string, point cartolib.GeoPoint) {
	l.log.Debug().
		Str("resolver", resolver).
		Str("addr", addr).
		Float64("latitude", point.Latitude).
		Float64("longitude", point.Longitude).
		Msg("resolved address")
}

func (l *logger) DNSSkip(host string) {
	l.log.Warn().
		Str("host", host).
		Msg("host has no usable ipv4 address")
}

func (l *logger) SelfIPError(err error) {
	l.log.Warn().
		Err(err).
		Msg("cannot detect own address, origin defaults to 0,0")
}

func (l *logger) DatabaseLoaded(records, skipped int) {
	l.log.Debug().
		Int("records", records).
		Int("skipped", skipped).
		Msg("range database is loaded")
}

func newLogger(debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &logger{
		log: zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level),
	}
}
