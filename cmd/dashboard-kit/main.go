package main

import (
	"fmt"
	"os"

	"github.com/Slach/dashboard-kit/pkg/cli"
	"github.com/Slach/dashboard-kit/pkg/logging"
	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	logging.InitConsoleStdErrLog()
	cliInstance := &types.CLI{}
	rootCmd := cli.NewRootCommand(cliInstance, version)

	if err := rootCmd.Execute(); err != nil {
		log.Debug().Stack().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
