// Package config loads gridkit scenario files.
//
// A scenario file is YAML:
//
//	log_level: debug
//	max_ticks: 100000
//	scenarios:
//	  - name: maze
//	    kind: path
//	    input: maze.txt
//	    start: S
//	    goal: E
//	    wall: "#"
//
// Relative input paths are resolved against the directory of the scenario
// file. Environment variables (optionally from a .env file) override the
// file-level settings: GRIDKIT_LOG_LEVEL and GRIDKIT_MAX_TICKS.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Scenario kinds.
const (
	KindPath    = "path"
	KindFlood   = "flood"
	KindRegions = "regions"
	KindRisk    = "risk"
	KindLife    = "life"
	KindSeats   = "seats"
	KindLumber  = "lumber"
	KindBots    = "bots"
)

var kinds = map[string]bool{
	KindPath: true, KindFlood: true, KindRegions: true, KindRisk: true,
	KindLife: true, KindSeats: true, KindLumber: true, KindBots: true,
}

var (
	// ErrNoScenarios is returned for a file without scenarios.
	ErrNoScenarios = errors.New("config: no scenarios")

	// ErrUnknownKind is returned for an unsupported scenario kind.
	ErrUnknownKind = errors.New("config: unknown scenario kind")

	// ErrNoInput is returned when a scenario has neither lines nor an input file.
	ErrNoInput = errors.New("config: scenario has no input")

	// ErrInvalid is returned for out-of-range settings.
	ErrInvalid = errors.New("config: invalid setting")
)

// File is the top-level scenario document.
type File struct {
	LogLevel  string     `yaml:"log_level"`
	MaxTicks  int        `yaml:"max_ticks"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one puzzle run. Fields a kind does not use are ignored.
type Scenario struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Input        string   `yaml:"input"`
	Lines        []string `yaml:"lines"`
	Connectivity string   `yaml:"connectivity"`
	Wall         string   `yaml:"wall"`
	Start        string   `yaml:"start"`
	Goal         string   `yaml:"goal"`
	Ticks        int      `yaml:"ticks"`
	Born         []int    `yaml:"born"`
	Survive      []int    `yaml:"survive"`
	Unbounded    bool     `yaml:"unbounded"`
	Visible      bool     `yaml:"visible"`
	Tolerance    int      `yaml:"tolerance"`
	PNG          string   `yaml:"png"`
}

// LoadEnv reads .env files into the process environment. Missing files are
// skipped; an unreadable or malformed file is an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// Load reads, validates and resolves the scenario file at path.
func Load(path string) (*File, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if len(sc.Lines) > 0 {
			continue
		}
		in := sc.Input
		if !filepath.IsAbs(in) {
			in = filepath.Join(dir, in)
		}
		if sc.Lines, err = ReadLines(in); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	return f, nil
}

// Parse decodes a scenario document, applies environment overrides and
// validates every scenario. Input files are not read.
func Parse(body []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if v, ok := os.LookupEnv("GRIDKIT_LOG_LEVEL"); ok {
		f.LogLevel = v
	}
	if v, ok := os.LookupEnv("GRIDKIT_MAX_TICKS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: GRIDKIT_MAX_TICKS=%q", ErrInvalid, v)
		}
		f.MaxTicks = n
	}
	if f.MaxTicks < 0 {
		return nil, fmt.Errorf("%w: max_ticks %d", ErrInvalid, f.MaxTicks)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].validate(i); err != nil {
			return nil, err
		}
	}

	return &f, nil
}

func (sc *Scenario) validate(i int) error {
	sc.Kind = strings.ToLower(strings.TrimSpace(sc.Kind))
	if sc.Name == "" {
		sc.Name = fmt.Sprintf("%s-%d", sc.Kind, i+1)
	}
	if !kinds[sc.Kind] {
		return fmt.Errorf("scenario %q: %w: %q", sc.Name, ErrUnknownKind, sc.Kind)
	}
	if len(sc.Lines) == 0 && sc.Input == "" {
		return fmt.Errorf("scenario %q: %w", sc.Name, ErrNoInput)
	}
	if sc.Ticks < 0 || sc.Tolerance < 0 {
		return fmt.Errorf("scenario %q: %w: ticks and tolerance must be non-negative", sc.Name, ErrInvalid)
	}
	if sc.Kind == KindPath && (sc.Start == "" || sc.Goal == "") {
		return fmt.Errorf("scenario %q: %w: path needs start and goal markers", sc.Name, ErrInvalid)
	}
	if (sc.Kind == KindFlood || sc.Kind == KindPath) && len([]rune(sc.Start)) > 1 {
		return fmt.Errorf("scenario %q: %w: start marker must be one rune", sc.Name, ErrInvalid)
	}

	return nil
}

// ReadLines returns the lines of a text file without trailing newlines.
// Trailing blank lines are dropped.
func ReadLines(path string) ([]string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
