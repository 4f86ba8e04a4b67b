// dialoguecast - turn scripted dialogue into a single voiced audio file
// License: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal/render"
	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal/status"
	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal/version"
	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal/voices"
)

func NewDialoguecastCommand() *cobra.Command {
	cmd := render.NewRenderCommand()

	cmd.AddCommand(
		voices.NewVoicesCommand(),
		status.NewStatusCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	if err := NewDialoguecastCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
