// Command huffdemo compresses a sample input with a Huffman code, decompresses
// it again, and prints the recovered text.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	huffman "github.com/chronos-tachyon/bytehuffman"
)

const sampleInput = "hello 😊 xyz 🙋🏿‍♀️ world!"

var (
	flagInput   = flag.String("in", "", "file to compress (default: built-in sample)")
	flagVerbose = flag.Bool("v", false, "log at debug level and dump the tree")
	flagPacked  = flag.Bool("packed", false, "also report the packed byte size")
)

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, os.Stdout); err != nil {
		log.WithError(err).Fatal("huffdemo failed")
	}
}

func run(log *logrus.Logger, stdout io.Writer) error {
	input, err := loadInput(*flagInput)
	if err != nil {
		return err
	}

	tree, bits, err := huffman.Compress(input)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	stats := huffman.MakeStats(tree, len(input), bits)
	log.WithFields(logrus.Fields{
		"input_bits":  stats.InputBytes * 8,
		"output_bits": stats.OutputBits,
		"ratio":       fmt.Sprintf("%.3f", stats.Ratio()),
		"leaves":      stats.NumLeaves,
	}).Info("compressed")

	if *flagVerbose {
		var dump bytes.Buffer
		_, _ = tree.Dump(&dump)
		log.Debugf("tree:\n%s", dump.String())
		log.Debugf("bits: %s", bits)
	}

	if *flagPacked {
		var packed bytes.Buffer
		n, err := bits.WriteTo(&packed)
		if err != nil {
			return fmt.Errorf("pack: %w", err)
		}
		log.WithField("packed_bytes", n).Info("packed")
	}

	output, err := huffman.Decompress(tree, bits)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if !bytes.Equal(input, output) {
		return fmt.Errorf("round trip mismatch: got %d bytes, expected %d", len(output), len(input))
	}

	_, err = fmt.Fprintln(stdout, string(output))
	return err
}

func loadInput(path string) ([]byte, error) {
	if path == "" {
		return []byte(sampleInput), nil
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return input, nil
}
