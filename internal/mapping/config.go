package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultConfigFile is read when no path is given on the command line.
const DefaultConfigFile = "config.txt"

// ErrInvalidConfig marks configuration content that cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// Parse reads whitespace separated "<TOKEN> <HEX_KEYCODE>" pairs. Line
// breaks carry no meaning; tokens are consumed two at a time.
func Parse(r io.Reader) ([]Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var pairs []Pair
	for scanner.Scan() {
		name := scanner.Text()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			return nil, fmt.Errorf("%w: token %q has no key code", ErrInvalidConfig, name)
		}
		key, err := parseKeyCode(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: %v", ErrInvalidConfig, name, err)
		}
		pairs = append(pairs, Pair{Name: name, Key: key})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return pairs, nil
}

func parseKeyCode(s string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid hex key code %q", s)
	}
	return int(v), nil
}

// LoadFile reads and parses the configuration file at path and builds the
// mapping table from it.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return Build(pairs), nil
}
