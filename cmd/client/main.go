package main

import (
	"appcenter-go/internal/cmd"
	"os"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
