package main

import "github.com/astfn/as-enum/pkg/cli"

func main() {
	cli.Execute()
}
