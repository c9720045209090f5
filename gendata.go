// Package gendata generates files of random key/value records for
// feeding an external sort. Each record is one line of the form
// {key}:{value}, where key is a decimal uint64 and value is 5 to 15
// alphanumeric characters.
package gendata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultFileName is where records are written when no path is given.
const DefaultFileName = "gen_data.txt"

const (
	minValueLen = 5
	maxValueLen = 15

	progressInterval = 10000
)

var letters = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

var (
	ErrNotAnInteger = errors.New("line count is not an integer")
	ErrNotPositive  = errors.New("line count must be positive")
)

// Record is one generated key/value pair.
type Record struct {
	Key   uint64
	Value string
}

// String renders the record in its on-disk form, without the trailing newline.
func (r Record) String() string {
	return strconv.FormatUint(r.Key, 10) + ":" + r.Value
}

// Generator draws records from its own random source, so runs can be
// reproduced by seeding.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Record draws one record: a key uniform over the full uint64 range and
// a value of 5 to 15 characters uniform over [A-Za-z0-9].
func (g *Generator) Record() Record {
	n := minValueLen + g.rng.Intn(maxValueLen-minValueLen+1)
	val := make([]byte, n)
	for i := range val {
		val[i] = letters[g.rng.Intn(len(letters))]
	}
	return Record{Key: g.rng.Uint64(), Value: string(val)}
}

// ParseLineCount parses user input into a line count. It returns an
// error wrapping ErrNotAnInteger when the input does not parse, and one
// wrapping ErrNotPositive when the parsed count is zero or negative.
func ParseLineCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}
	return n, nil
}

// WriteTo writes n records drawn from g to w, one per line, logging
// progress every 10000 records.
func WriteTo(w io.Writer, n int64, g *Generator) error {
	for i := int64(0); i < n; i++ {
		if i > 0 && i%progressInterval == 0 {
			log.Printf("%d recs", i)
		}
		if _, err := fmt.Fprintf(w, "%s\n", g.Record()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

// WriteFile creates the file at path, truncating any previous contents,
// and writes n records drawn from g to it. The write is not atomic: a
// failure partway through can leave a truncated file at path.
func WriteFile(path string, n int64, g *Generator) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			retErr = multierror.Append(retErr, fmt.Errorf("Close: %w", err))
		}
	}()

	w := bufio.NewWriter(f)
	if err := WriteTo(w, n, g); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("Flush: %w", err)
	}
	return nil
}
