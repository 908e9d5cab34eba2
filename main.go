package main

import "github.com/kartoza/kinetics-lab/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
