package main

import (
	"github.com/safeplay-cli/safeplay/cmd"
	"github.com/safeplay-cli/safeplay/config"
	"github.com/safeplay-cli/safeplay/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
