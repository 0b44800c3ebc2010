package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/cli"
	"github.com/robalobadob/guess/internal/config"
)

func main() {
	cfg := config.Load()
	log.Logger = cfg.Logger(os.Stderr)

	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("guessing game exited")
	}
}
