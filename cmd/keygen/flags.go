package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sourcecd/keypairgen/internal/client"
)

type keygenConfig struct {
	client.ConfigArgs
	Loglevel string // zap log level
	Bits     int    // requested modulus size
	Version  bool   // print build info and exit
}

func keygenEnv(config *keygenConfig) {
	a := os.Getenv("ADDRESS")
	k := os.Getenv("KEY")
	l := os.Getenv("LOG_LEVEL")
	b := os.Getenv("KEY_BITS")

	if a != "" {
		if len(strings.Split(a, ":")) >= 2 {
			config.ServerAddr = a
		}
	}
	if k != "" {
		config.KeyEnc = k
	}
	if l != "" {
		config.Loglevel = l
	}
	if b != "" {
		i, err := strconv.Atoi(b)
		if err != nil {
			log.Fatal(err)
		}
		config.Bits = i
	}
}

func keygenFlags(config *keygenConfig) {
	flag.IntVar(&config.Bits, "b", 2048, "key size in bits (1024, 2048 or 4096)")
	flag.StringVar(&config.ServerAddr, "a", "", "bridge address, empty generates in process")
	flag.StringVar(&config.KeyEnc, "k", "", "shared key for request signing")
	flag.StringVar(&config.Loglevel, "l", "error", "log level")
	flag.BoolVar(&config.Version, "v", false, "print build info")
	flag.Parse()
}
