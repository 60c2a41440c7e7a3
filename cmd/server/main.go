// Bridge server exposing the generate_keypair command to the GUI host.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcecd/keypairgen/internal/server"
)

// Number of seconds before force interrupt program.
const interruptAfter = 10

func main() {
	printBuildFlags(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	context.AfterFunc(ctx, func() {
		log.Println("received graceful shutdown signal")
		time.Sleep(interruptAfter * time.Second)
		log.Fatal("Interrupted by shutdown time exceeded!!!")
	})

	var config server.ConfigArgs

	servFlags(&config)
	servEnv(&config)

	if err := server.Run(ctx, config); err != nil {
		log.Fatal(err)
	}
}
