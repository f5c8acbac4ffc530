package main

import (
	"stationpedia/cli"
)

func main() {
	cli.Start()
}
