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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-environment deployment environment name
//	-debug enable debug mode
//	-secret-key secret key
//	-read-timeout request read timeout (e.g., "10s")
//	-write-timeout response write timeout (e.g., "10s")
//	-idle-timeout keep-alive idle timeout (e.g., "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-c/-config configuration file path (JSON, TOML or YAML)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fluxrouter-backend", flag.ContinueOnError)

	var serverAddress NetAddress
	var environment string
	var debug bool
	var secretKey string
	var readTimeout, writeTimeout, idleTimeout, shutdownTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&environment, "environment", "", "Deployment environment name")
	fs.BoolVar(&debug, "debug", false, "Enable debug mode")
	fs.StringVar(&secretKey, "secret-key", "", "Secret key")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Request read timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Response write timeout (e.g., 10s)")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Keep-alive idle timeout (e.g., 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "Config file path (.json, .toml, .yaml)")
	fs.StringVar(&jsonConfigPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			Debug:       debug,
			SecretKey:   secretKey,
		},
		Server: Server{
			Host:            serverAddress.Host,
			Port:            serverAddress.Port,
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			IdleTimeout:     idleTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		FilePath: jsonConfigPath,
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
// The host may be omitted (":8080") to keep the configured one. It validates
// the port range, checks IP correctness unless host is "localhost", and
// returns an error if the format or values are invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
