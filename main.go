package main

import (
	"github.com/boomerplus/boomerplus/cmd"
	"github.com/boomerplus/boomerplus/config"
	"github.com/boomerplus/boomerplus/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
