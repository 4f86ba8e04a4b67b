package voices

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal"
	"github.com/sipeed/dialoguecast/pkg/voice"
)

func NewVoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "voices",
		Aliases: []string{"ls"},
		Short:   "List the voices available to the configured account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			debug, _ := cmd.Flags().GetBool("debug")

			cfg, err := internal.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := internal.SetupLogging(cfg, debug); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return listVoices(cmd.Context(), internal.NewProvider(cfg), cmd.OutOrStdout())
		},
	}

	return cmd
}

func listVoices(ctx context.Context, provider voice.Provider, w io.Writer) error {
	catalog, err := provider.ListVoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch available voices: %w", err)
	}
	if catalog.Len() == 0 {
		return voice.ErrEmptyCatalog
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tCATEGORY")
	for _, v := range catalog {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, v.ID, v.Category)
	}
	return tw.Flush()
}
