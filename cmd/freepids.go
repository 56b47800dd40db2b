package cmd

import (
	"proto-manager/feature/freepids"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// freePIDsCmd represents the free-pids command
var freePIDsCmd = &cobra.Command{
	Use:   "free-pids",
	Short: "Report unused prototype identifiers",
	Long: `Builds the item and critter registries and writes the identifier ranges below
proto.max_pid that no prototype uses. On failure the report file holds the error instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		protoPath, _ := cmd.Flags().GetString("path")
		output, _ := cmd.Flags().GetString("output")

		env, err := setup(protoPath)
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		if output == "" {
			output = env.cfg.Output.FreePIDs
		}

		svc, err := freepids.NewService(env.cfg.Proto, env.logger)
		if err != nil {
			return err
		}
		if err := svc.WriteReport(env.root, output); err != nil {
			return err
		}

		env.logger.Info("Free identifier report saved", zap.String("file", output))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(freePIDsCmd)

	freePIDsCmd.Flags().String("path", "", "Prototype directory (overrides proto.path)")
	freePIDsCmd.Flags().StringP("output", "o", "", "Report file (overrides output.free_pids)")
}
