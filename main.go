package main

import (
	"log/slog"
	"os"

	"asciify/render"

	"github.com/alecthomas/kong"
)

func main() {
	var cli render.CLICmd
	kong.Parse(&cli,
		kong.Name("asciify"),
		kong.Description("Convert an image into ASCII art printed to the terminal."))

	if err := cli.Run(); err != nil {
		slog.Error("could not convert image", "file", cli.Image, "error", err)
		os.Exit(1)
	}
}
