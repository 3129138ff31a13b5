package boxsearch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/grid"
)

// ParseBot reads one "pos=<x,y,z>, r=n" line.
func ParseBot(line string) (Bot, error) {
	var x, y, z, r int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "pos=<%d,%d,%d>, r=%d", &x, &y, &z, &r); err != nil {
		return Bot{}, fmt.Errorf("%w: %q: %v", ErrBadBot, line, err)
	}
	if r < 0 {
		return Bot{}, fmt.Errorf("%w: %q", ErrNegativeRadius, line)
	}

	return Bot{Pos: grid.XYZ(x, y, z), R: r}, nil
}

// ParseBots reads one bot per non-blank line.
func ParseBots(lines []string) ([]Bot, error) {
	out := make([]Bot, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := ParseBot(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, b)
	}

	return out, nil
}
