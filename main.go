package main

import (
	"os"

	"github.com/Rakhulsr/cloth-cafe/app/cmd"
)

func main() {
	cmd.RunCli(os.Args)
}
