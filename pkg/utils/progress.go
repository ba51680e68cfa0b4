package utils

import (
	"fmt"
	"strings"
)

// PrintProgress redraws a single-line progress bar on stdout.
func PrintProgress(section string, current int, total int, description string) {
	nbBlocks := 50

	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	blocks := current * nbBlocks / total
	percentage := current * 100 / total

	fmt.Printf("\r[%s%s] %d%% (%d/%d) | %s",
		strings.Repeat("=", blocks),
		strings.Repeat(" ", nbBlocks-blocks),
		percentage,
		current,
		total,
		description)
}
