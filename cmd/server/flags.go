package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sourcecd/keypairgen/internal/server"
)

func servEnv(config *server.ConfigArgs) {
	a := os.Getenv("ADDRESS")
	l := os.Getenv("LOG_LEVEL")
	k := os.Getenv("KEY")

	if a != "" {
		if len(strings.Split(a, ":")) == 2 {
			config.ServerAddr = a
		}
	}
	if l != "" {
		config.Loglevel = l
	}
	if k != "" {
		config.KeyEnc = k
	}
}

func servFlags(config *server.ConfigArgs) {
	flag.StringVar(&config.ServerAddr, "a", "localhost:8080", "bridge bind address and port")
	flag.StringVar(&config.Loglevel, "l", "info", "log level")
	flag.StringVar(&config.KeyEnc, "k", "", "shared key for request signing")
	flag.Parse()
}
