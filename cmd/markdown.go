package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown, printing it raw")
		out = md
	}
	fmt.Fprint(stdout, out)
}
