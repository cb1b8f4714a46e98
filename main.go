package main

import "github.com/weldtool/weld/internal/cli"

func main() {
	cli.Execute()
}
