package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chaosgame/flame"
)

// promptConfig collects a validated Config interactively, re-asking each
// question until the answer parses and passes its range check. It returns
// an error only when the input stream ends before the configuration is
// complete.
func promptConfig(in io.Reader, out io.Writer) (Config, error) {
	sc := bufio.NewScanner(in)
	cfg := defaultConfig()

	fmt.Fprintln(out, "Flame render setup:")

	var err error
	if cfg.Width, err = promptInt(sc, out, "Image width (e.g. 800)", 1); err != nil {
		return cfg, err
	}
	if cfg.Height, err = promptInt(sc, out, "Image height (e.g. 600)", 1); err != nil {
		return cfg, err
	}
	if cfg.Samples, err = promptInt(sc, out, "Number of samples (e.g. 100000)", 1); err != nil {
		return cfg, err
	}
	if cfg.Iterations, err = promptInt(sc, out, "Iterations per sample (e.g. 50)", 1); err != nil {
		return cfg, err
	}
	if cfg.Transforms, err = promptTransforms(sc, out); err != nil {
		return cfg, err
	}

	multi, err := promptYesNo(sc, out, "Use multiple workers? (y/n)")
	if err != nil {
		return cfg, err
	}
	cfg.Workers = 1
	if multi {
		if cfg.Workers, err = promptInt(sc, out, "Number of workers (e.g. 4)", 1); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// promptInt asks for an integer no smaller than min, re-asking on any
// invalid answer.
func promptInt(sc *bufio.Scanner, out io.Writer, label string, min int) (int, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := readLine(sc)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(out, "error: please enter a whole number\n")
			continue
		}
		if v < min {
			fmt.Fprintf(out, "error: please enter a value of at least %d\n", min)
			continue
		}
		return v, nil
	}
}

// promptTransforms prints the catalog with indices and asks for a
// comma-separated selection, re-asking until every index is valid.
func promptTransforms(sc *bufio.Scanner, out io.Writer) ([]string, error) {
	catalog := flame.Transforms()
	fmt.Fprintln(out, "Available transforms:")
	for i, t := range catalog {
		fmt.Fprintf(out, "  %d: %s\n", i, t)
	}

	for {
		fmt.Fprintf(out, "Transform numbers, comma-separated (e.g. 0,1,2): ")
		line, err := readLine(sc)
		if err != nil {
			return nil, err
		}

		names, ok := parseTransformSelection(line, len(catalog))
		if !ok {
			fmt.Fprintf(out, "error: please enter valid transform numbers between 0 and %d\n", len(catalog)-1)
			continue
		}
		return names, nil
	}
}

// parseTransformSelection turns "0, 2,5" into catalog names. ok is false
// if any item fails to parse or falls outside [0, n).
func parseTransformSelection(line string, n int) (names []string, ok bool) {
	fields := strings.Split(line, ",")
	for _, f := range fields {
		idx, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || idx < 0 || idx >= n {
			return nil, false
		}
		names = append(names, flame.Transform(idx).String())
	}
	return names, len(names) > 0
}

func promptYesNo(sc *bufio.Scanner, out io.Writer, label string) (bool, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := readLine(sc)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return sc.Text(), nil
}
