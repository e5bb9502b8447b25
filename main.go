package main

import (
	"github.com/mugiwara-cli/mugiwara/cmd"
	"github.com/mugiwara-cli/mugiwara/config"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
