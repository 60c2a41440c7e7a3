// Keygen command prints a fresh RSA key pair as PEM.
// Keys are generated in process or by a running bridge server.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sourcecd/keypairgen/internal/client"
	"github.com/sourcecd/keypairgen/internal/keypair"
	"github.com/sourcecd/keypairgen/internal/logging"
	"github.com/sourcecd/keypairgen/internal/models"
)

func generate(ctx context.Context, config keygenConfig) (*models.KeyPair, error) {
	if config.ServerAddr != "" {
		return client.New(config.ConfigArgs).GenerateKeypair(ctx, config.Bits)
	}

	select {
	case res := <-keypair.NewGenerator().Go(config.Bits):
		return res.Pair, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func run(ctx context.Context, config keygenConfig, w io.Writer) error {
	if config.Version {
		printBuildFlags(w)
		return nil
	}
	if err := logging.Setup(config.Loglevel); err != nil {
		return err
	}
	defer func() {
		_ = logging.Log.Sync()
	}()

	pair, err := generate(ctx, config)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, pair.PublicKey, pair.PrivateKey); err != nil {
		return err
	}
	return nil
}

func main() {
	// error text goes to the user verbatim
	log.SetFlags(0)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	var config keygenConfig
	keygenFlags(&config)
	keygenEnv(&config)

	if err := run(ctx, config, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
