// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the daemon flags from args (without the program name).
//
// Flags:
//
//	-a coordinator listen address in format [host]:[port]
//	-r remote bookmark service URL
//	-d key-value store DSN
//	-b bookmarks file path
//	-c/-config json file path with configs
//	-hash-key coordinator signing key
//	-app-version client schema version
//	-sync-interval update check interval (e.g., "5m")
//	-request-timeout remote request timeout (e.g., "15s")
//	-rate-limit remote requests per second
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var coordinatorAddress NetAddress
	var remoteAddress string
	var databaseDSN string
	var bookmarksPath string
	var jsonConfigPath string
	var hashKey string
	var appVersion string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var rateLimit float64
	var logFile string

	fs := flag.NewFlagSet("syncd", flag.ContinueOnError)
	fs.Var(&coordinatorAddress, "a", "Coordinator net address host:port")
	fs.StringVar(&remoteAddress, "r", "", "Remote bookmark service URL")
	fs.StringVar(&databaseDSN, "d", "", "Key-value store DSN")
	fs.StringVar(&bookmarksPath, "b", "", "Bookmarks file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Coordinator signing key")
	fs.StringVar(&appVersion, "app-version", "", "Client schema version")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Update check interval (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Remote requests per second")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: appVersion,
			HashKey: hashKey,
		},
		Storage: Storage{
			DB:        DB{DSN: databaseDSN},
			Bookmarks: Bookmarks{FilePath: bookmarksPath},
		},
		Coordinator: Coordinator{
			Address: coordinatorAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
