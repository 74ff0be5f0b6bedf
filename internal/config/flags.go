package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the command-line arguments.
//
// Flags:
//
//	-a diagnostic HTTP server address in format [host]:[port]
//	-remote-grpc configuration service gRPC target
//	-remote-http configuration service HTTP base URL
//	-remote-timeout timeout of a single remote call (e.g., "10s")
//	-retry-backoff wait between two startup attempts (e.g., "3s")
//	-retry-timeout budget of the startup fetch (e.g., "1m")
//	-retry-max-attempts ceiling on startup attempts
//	-c/-config JSON or YAML file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var remoteGRPC, remoteHTTP string
	var remoteTimeout time.Duration
	var backoff, retryTimeout time.Duration
	var maxAttempts int
	var configPath string

	fs := flag.NewFlagSet("forwardauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&remoteGRPC, "remote-grpc", "", "Configuration service gRPC target")
	fs.StringVar(&remoteHTTP, "remote-http", "", "Configuration service HTTP base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote call timeout (e.g., 10s)")
	fs.DurationVar(&backoff, "retry-backoff", 0, "Wait between startup attempts (e.g., 3s)")
	fs.DurationVar(&retryTimeout, "retry-timeout", 0, "Startup fetch budget (e.g., 1m)")
	fs.IntVar(&maxAttempts, "retry-max-attempts", 0, "Ceiling on startup attempts")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Remote: Remote{
			GRPCAddress:    remoteGRPC,
			HTTPAddress:    remoteHTTP,
			RequestTimeout: remoteTimeout,
		},
		Retry: Retry{
			Backoff:     backoff,
			Timeout:     retryTimeout,
			MaxAttempts: maxAttempts,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
