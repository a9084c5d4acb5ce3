package main

import (
	"log"

	"github.com/astfn/as-enum/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
