package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion bar like [████░░░░] 2/4.
// The bar is green once complete, yellow past half, red below.
func RenderProgress(done, total, width int) string {
	if total <= 0 {
		return Dim("[" + strings.Repeat(emptyBlock, max(width, 2)) + "] 0/0")
	}
	done = min(max(done, 0), total)
	if width < 2 {
		width = 2
	}

	filled := done * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case done == total:
		style = StyleGreen
	case done*2 >= total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}
