// Package cmd implements the learninghub command line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/config"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/profiles"
	"github.com/mviorel/learninghub/internal/session"
	"github.com/mviorel/learninghub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learninghub",
	Short: "Lesson progression and grading for the classroom",
	Long: "LearningHub is a terminal companion for working through gated lesson modules:\n" +
		"checkpoints unlock lessons in order, quiz attempts are bounded, and grades\n" +
		"export with a tamper-evident checksum for the teacher.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNINGHUB_DB)")
	rootCmd.PersistentFlags().String("profile", "", "Profile id to act as (overrides the active profile)")
	rootCmd.PersistentFlags().Bool("reviewer", false, "Reviewer mode: bypass all sequential locking")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the effective configuration: file, env, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if r, _ := cmd.Flags().GetBool("reviewer"); r {
		cfg.ReviewerMode = true
	}
	return cfg, nil
}

// openStore opens the database named by cfg, falling back to the platform
// default path.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildSession resolves the acting profile (--profile flag, then the
// persisted active profile, then guest) and wires the per-profile services.
func buildSession(ctx context.Context, cmd *cobra.Command, st *store.Store, cfg config.Config) (*session.Session, error) {
	profileID, _ := cmd.Flags().GetString("profile")
	if profileID == "" {
		svc := profiles.NewService(st.ProfileRepo(), st.StateRepo())
		active, err := svc.ActiveProfileID(ctx)
		if err != nil {
			return nil, err
		}
		profileID = active
	}
	return session.New(ctx, st, cfg, profileID)
}

// loadContent reads the module manifests under the configured content dir.
func loadContent(cfg config.Config) (*content.Loader, error) {
	loader, err := content.NewLoader(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", cfg.ContentDir, err)
	}
	return loader, nil
}

// lookupLesson finds (module, lesson) in the loaded content.
func lookupLesson(loader *content.Loader, moduleID, lessonID string) (content.Module, content.Lesson, error) {
	mod, ok := loader.Module(moduleID)
	if !ok {
		return content.Module{}, content.Lesson{}, fmt.Errorf("unknown module %q", moduleID)
	}
	lesson, ok := mod.Lesson(lessonID)
	if !ok {
		return content.Module{}, content.Lesson{}, fmt.Errorf("unknown lesson %q in module %q", lessonID, moduleID)
	}
	return mod, lesson, nil
}
