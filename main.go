package main

import (
	"imgconv/cli"
)

func main() {
	cli.Start()
}
