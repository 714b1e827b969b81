// Command huffzip compresses and decompresses files with static Huffman
// codes.
//
//     huffzip encode -i input.txt -o input.huff
//     huffzip decode -i input.huff -o input.txt
//     huffzip inspect -i input.huff
//
package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	inputFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Path of the file to read",
		Required: true,
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Path of the file to write",
		Required: true,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "huffzip",
		Usage: "Huffman coding compression tool",
		Flags: []cli.Flag{verbosityFlag},
		Before: func(ctx *cli.Context) error {
			lvl := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
			log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)))
			return nil
		},
		Commands: []*cli.Command{
			encodeCommand,
			decodeCommand,
			inspectCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error("Command failed", "err", err)
		os.Exit(1)
	}
}
