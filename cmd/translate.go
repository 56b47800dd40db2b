package cmd

import (
	"fmt"

	"proto-manager/core/dialect"
	"proto-manager/core/textenc"

	"github.com/spf13/cobra"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Print the canonical TOML form of a prototype file",
	Long: `Translates one prototype source file into its canonical TOML document and prints it.
Line numbers of the output match the source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comments, _ := cmd.Flags().GetBool("comments")
		encoding, _ := cmd.Flags().GetString("encoding")

		dec, err := textenc.New(encoding)
		if err != nil {
			return err
		}
		text, err := dec.ReadFile(args[0])
		if err != nil {
			return err
		}

		canonical, err := dialect.Translate(text, args[0], dialect.Options{Comments: comments})
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), canonical)
		return err
	},
}

func init() {
	RootCmd.AddCommand(translateCmd)

	translateCmd.Flags().Bool("comments", false, "Keep trailing comments")
	translateCmd.Flags().String("encoding", "utf-8", "Source text encoding")
}
