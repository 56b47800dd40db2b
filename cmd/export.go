package cmd

import (
	"fmt"

	"proto-manager/core/storage"
	"proto-manager/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export validated prototypes as JSON",
	Long: `Builds the item and critter registries and writes one JSON array per source file,
either below output.dir or, with --bucket or storage.enabled, to the configured bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		protoPath, _ := cmd.Flags().GetString("path")
		dir, _ := cmd.Flags().GetString("dir")
		toBucket, _ := cmd.Flags().GetBool("bucket")

		env, err := setup(protoPath)
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		var sink export.Sink
		if toBucket || env.cfg.Storage.Enabled {
			client, err := storage.NewClient(env.cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			if err := storage.EnsureBucket(ctx, client, env.cfg.Storage.Bucket, env.cfg.Storage.Region); err != nil {
				return err
			}
			sink = export.NewBucketSink(client, env.cfg.Storage.Bucket, env.cfg.Storage.Prefix)
			env.logger.Info("Exporting to bucket", zap.String("bucket", env.cfg.Storage.Bucket), zap.String("prefix", env.cfg.Storage.Prefix))
		} else {
			if dir == "" {
				dir = env.cfg.Output.Dir
			}
			sink = export.DirSink{Dir: dir}
			env.logger.Info("Exporting to directory", zap.String("dir", dir))
		}

		svc, err := export.NewService(env.cfg.Proto, sink, env.logger)
		if err != nil {
			return err
		}
		_, err = svc.Export(ctx, env.root)
		return err
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("path", "", "Prototype directory (overrides proto.path)")
	exportCmd.Flags().String("dir", "", "Output directory (overrides output.dir)")
	exportCmd.Flags().Bool("bucket", false, "Upload to the configured storage bucket")
}
