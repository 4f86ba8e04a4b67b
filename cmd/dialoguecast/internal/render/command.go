package render

import (
	"github.com/spf13/cobra"

	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal"
	"github.com/sipeed/dialoguecast/pkg/conversation"
)

// NewRenderCommand returns the command that turns a dialogue file into audio.
// It is used as the root command, so its Use starts with the binary name.
func NewRenderCommand() *cobra.Command {
	var (
		mapPath    string
		pauseMean  int
		pauseStdev int
		seed       uint64
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "dialoguecast <input_file>",
		Short: "Generate dialogue audio using ElevenLabs voices",
		Example: `  dialoguecast script.txt
  dialoguecast script.txt -m speakers.json --pause-mean 700 --pause-stdev 150`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := internal.SetupLogging(cfg, debug); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("pause-mean") {
				cfg.Pause.MeanMS = pauseMean
			}
			if flags.Changed("pause-stdev") {
				cfg.Pause.StdevMS = pauseStdev
			}

			opts := Options{
				InputPath: args[0],
				MapPath:   mapPath,
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			}
			if flags.Changed("seed") {
				opts.Rand = conversation.NewSeededRand(seed)
			}

			_, err = Run(cmd.Context(), cfg, internal.NewProvider(cfg), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "Path to a JSON file containing a custom speaker-to-voice map")
	cmd.Flags().IntVar(&pauseMean, "pause-mean", 500, "Mean duration of pause (in ms) between each line of dialogue")
	cmd.Flags().IntVar(&pauseStdev, "pause-stdev", 100, "Standard deviation of pause duration (in ms)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for pause sampling (random when unset)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}
