package main

import (
	"github.com/sysvitals/eventscope/pkg/cli"
)

func main() {
	cli.Execute()
}
