package main

import (
	"os"

	"github.com/gookit/color"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
}
