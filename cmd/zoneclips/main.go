package main

import "github.com/rugbyops/zoneclips/internal/cli"

func main() {
	cli.Execute()
}
