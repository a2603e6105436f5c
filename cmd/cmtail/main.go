package main

import (
	"os"

	"cmtail/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
