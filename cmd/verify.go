package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/grading"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <bundle file>",
	Short: "Check a grade bundle for tampering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		err = grading.Verify(raw)

		var mismatch *grading.VerifyError
		if errors.As(err, &mismatch) {
			fmt.Println("TAMPERED: the payload does not match its checksum.")
			fmt.Printf("  recorded:   %s\n", mismatch.Expected)
			fmt.Printf("  calculated: %s\n", mismatch.Calculated)
			return fmt.Errorf("verification failed for %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Println("OK: checksum matches, payload is intact.")
		return nil
	},
}
