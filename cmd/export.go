package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <module id> <lesson id>",
	Short: "Export a checksummed grade bundle for a lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		loader, err := loadContent(cfg)
		if err != nil {
			return err
		}
		sess, err := buildSession(ctx, cmd, st, cfg)
		if err != nil {
			return err
		}

		_, lesson, err := lookupLesson(loader, args[0], args[1])
		if err != nil {
			return err
		}

		in, err := sess.Report(ctx, lesson)
		if err != nil {
			return err
		}
		bundle, err := sess.Exporter.Export(ctx, in)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			_, err := os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write bundle: %w", err)
		}
		fmt.Printf("Exported grade %d for %q to %s (fingerprint %s)\n",
			bundle.Payload.Grading.Grade, lesson.ID, out, bundle.Payload.Meta.Fingerprint)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file ('-' or empty for stdout)")
}
