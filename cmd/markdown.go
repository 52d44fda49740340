package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
