package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/chronos-tachyon/huffzip"
)

var (
	encodeCommand = &cli.Command{
		Name:   "encode",
		Usage:  "Compress a file",
		Flags:  []cli.Flag{inputFlag, outputFlag},
		Action: encode,
		Description: `
huffzip encode -i <input> -o <output>
Compresses the input file. An empty input file is left alone and no output
file is written.
`,
	}
	decodeCommand = &cli.Command{
		Name:   "decode",
		Usage:  "Decompress a file",
		Flags:  []cli.Flag{inputFlag, outputFlag},
		Action: decode,
	}
	inspectCommand = &cli.Command{
		Name:   "inspect",
		Usage:  "Print the header and code table of a compressed file",
		Flags:  []cli.Flag{inputFlag},
		Action: inspect,
	}
)

func encode(ctx *cli.Context) error {
	var (
		in    = ctx.String(inputFlag.Name)
		out   = ctx.String(outputFlag.Name)
		start = time.Now()
	)
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		log.Warn("Input file is empty, nothing to compress", "input", in)
		return nil
	}
	log.Debug("Compressing file", "input", in, "size", common.StorageSize(len(src)))

	packed, err := huffzip.Compress(src)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", in, err)
	}
	if err := writeFileAtomic(out, packed); err != nil {
		return err
	}
	log.Info("Compressed file", "input", in, "output", out,
		"original", common.StorageSize(len(src)),
		"compressed", common.StorageSize(len(packed)),
		"ratio", fmt.Sprintf("%.2f%%", 100*float64(len(packed))/float64(len(src))),
		"elapsed", common.PrettyDuration(time.Since(start)))
	return nil
}

func decode(ctx *cli.Context) error {
	var (
		in    = ctx.String(inputFlag.Name)
		out   = ctx.String(outputFlag.Name)
		start = time.Now()
	)
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	log.Debug("Decompressing file", "input", in, "size", common.StorageSize(len(src)))

	data, err := huffzip.Decompress(src)
	if err != nil {
		return fmt.Errorf("failed to decompress %s (file may be corrupt): %w", in, err)
	}
	if err := writeFileAtomic(out, data); err != nil {
		return err
	}
	log.Info("Decompressed file", "input", in, "output", out,
		"size", common.StorageSize(len(data)),
		"elapsed", common.PrettyDuration(time.Since(start)))
	return nil
}

func inspect(ctx *cli.Context) error {
	in := ctx.String(inputFlag.Name)
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	info, err := huffzip.Inspect(src)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", in, err)
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Original length: %d bytes\n", info.Header.OriginalLength)
	fmt.Fprintf(w, "Tree length:     %d bits\n", info.Header.TreeBitLength)
	fmt.Fprintf(w, "Data length:     %d bits\n", info.DataBits)
	fmt.Fprintf(w, "Padding:         %d bits\n", info.Header.Padding)
	fmt.Fprintf(w, "Leaves:          %d\n", info.Decoder.Tree().NumLeaves())
	_, err = info.Decoder.Dump(w)
	return err
}
