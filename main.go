package main

import (
	"os"

	"github.com/imnaval/webnotes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
