package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/bookalope/bookalope-go/bookalope"
)

var (
	chipStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	stepColors = map[bookalope.Step]lipgloss.Color{
		bookalope.StepUpload:           lipgloss.Color("33"),  // blue
		bookalope.StepProcessing:       lipgloss.Color("178"), // amber
		bookalope.StepConvert:          lipgloss.Color("35"),  // green
		bookalope.StepProcessingFailed: lipgloss.Color("160"), // red
	}

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// Progress chatter is quiet by default; BOOKALOPE_VERBOSE enables it.
var (
	verbose   bool
	statusOut io.Writer = os.Stdout
)

func setVerbose(v bool) {
	verbose = v
}

// stepChip renders a colored badge for a bookflow step.
func stepChip(step bookalope.Step) string {
	color, ok := stepColors[step]
	if !ok {
		color = lipgloss.Color("245")
	}
	return chipStyle.Foreground(color).Render(string(step))
}

func printStatus(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintln(statusOut, dimStyle.Render(fmt.Sprintf(format, args...)))
}

func printOK(format string, args ...any) {
	fmt.Fprintln(statusOut, okStyle.Render(fmt.Sprintf(format, args...)))
}

func printFail(format string, args ...any) {
	fmt.Fprintln(statusOut, failStyle.Render(fmt.Sprintf(format, args...)))
}
