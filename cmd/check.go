package cmd

import (
	"fmt"

	"proto-manager/core/proto"
	"proto-manager/core/protodir"
	"proto-manager/core/registry"
	"proto-manager/core/textenc"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate all prototype sources",
	Long:  `Builds the item and critter registries and fails on the first invalid file or identifier collision.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		protoPath, _ := cmd.Flags().GetString("path")

		env, err := setup(protoPath)
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		dec, err := textenc.New(env.cfg.Proto.Encoding)
		if err != nil {
			return err
		}

		items, err := buildRegistry[proto.Item](env, dec, env.cfg.Proto.ItemsList)
		if err != nil {
			return err
		}
		critters, err := buildRegistry[proto.Critter](env, dec, env.cfg.Proto.CrittersList)
		if err != nil {
			return err
		}

		fmt.Printf("Items: %d\n", items)
		fmt.Printf("Critters: %d\n", critters)
		env.logger.Info("Prototype sources are valid", zap.Int("items", items), zap.Int("critters", critters))
		return nil
	},
}

func buildRegistry[T proto.Record](env *environment, dec *textenc.Decoder, list string) (int, error) {
	manifest, err := protodir.Join(env.root, list)
	if err != nil {
		return 0, fmt.Errorf("manifest %s: %w", list, err)
	}
	reg, err := registry.NewBuilder[T](dec, env.cfg.Proto.Extension, env.logger).Build(manifest)
	if err != nil {
		return 0, err
	}
	return reg.Len(), nil
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("path", "", "Prototype directory (overrides proto.path)")
}
