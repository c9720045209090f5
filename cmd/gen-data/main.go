package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/tckz/go-gendata"
)

var (
	optOut     = flag.String("out", gendata.DefaultFileName, "path of the file to generate")
	optCount   = flag.Int64("count", 0, "number of lines to generate, 0 to prompt")
	optSeed    = flag.Int64("seed", 0, "random seed, 0 to seed from the clock")
	optVersion = flag.Bool("version", false, "show version")
)

var version string

func main() {
	flag.Parse()

	if *optVersion {
		fmt.Println(version)
		return
	}

	// failure is reported through console messages, not the exit code
	_ = run(os.Stdin, os.Stdout)
}

func run(stdin io.Reader, stdout io.Writer) error {
	count := *optCount
	switch {
	case count < 0:
		fmt.Fprintln(stdout, "Error: the number of lines must be positive.")
		return gendata.ErrNotPositive
	case count == 0:
		fmt.Fprint(stdout, "Enter the number of lines to generate: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err == io.EOF && line == "" {
			// input closed before anything was typed
			fmt.Fprintf(stdout, "An error occurred: %v.\n", err)
			return fmt.Errorf("read stdin: %w", err)
		}
		if err != nil && err != io.EOF {
			fmt.Fprintf(stdout, "An error occurred: %v.\n", err)
			return fmt.Errorf("read stdin: %w", err)
		}
		count, err = gendata.ParseLineCount(line)
		if err != nil {
			if errors.Is(err, gendata.ErrNotPositive) {
				fmt.Fprintln(stdout, "Error: the number of lines must be positive.")
			} else {
				fmt.Fprintln(stdout, "Error: please enter a valid integer.")
			}
			return err
		}
	}

	seed := *optSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	from := time.Now()
	if err := gendata.WriteFile(*optOut, count, gendata.NewGenerator(seed)); err != nil {
		fmt.Fprintf(stdout, "An error occurred: %v.\n", err)
		return err
	}
	log.Printf("dur=%s", time.Since(from))

	fmt.Fprintf(stdout, "File %s successfully created with %d lines.\n", *optOut, count)
	return nil
}
