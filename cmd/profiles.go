package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/profiles"
	"github.com/mviorel/learninghub/internal/store"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage learner profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfileService(cmd, func(svc *profiles.Service, st *store.Store) error {
			ctx := cmd.Context()
			list, err := svc.List(ctx)
			if err != nil {
				return err
			}
			active, err := svc.ActiveProfileID(ctx)
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Println("No profiles yet. Create one with: learninghub profiles create <name>")
			}
			for _, p := range list {
				marker := " "
				if p.ProfileID == active {
					marker = "*"
				}
				fmt.Printf("%s %s  %s  %s\n", marker, p.ProfileID, p.Avatar, p.DisplayName)
			}
			if active == store.GuestProfileID {
				fmt.Println("* (guest)")
			}
			return nil
		})
	},
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <display name>",
	Short: "Create a profile and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		avatar, _ := cmd.Flags().GetString("avatar")
		return withProfileService(cmd, func(svc *profiles.Service, st *store.Store) error {
			ctx := cmd.Context()
			rec, err := svc.Create(ctx, args[0], avatar)
			if err != nil {
				return err
			}
			if err := svc.SetActive(ctx, rec.ProfileID); err != nil {
				return err
			}
			fmt.Printf("Created profile %s (%s), now active.\n", rec.DisplayName, rec.ProfileID)
			return nil
		})
	},
}

var profilesRenameCmd = &cobra.Command{
	Use:   "rename <profile id> <new name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfileService(cmd, func(svc *profiles.Service, st *store.Store) error {
			if err := svc.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Renamed.")
			return nil
		})
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <profile id>",
	Short: "Delete a profile and all its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfileService(cmd, func(svc *profiles.Service, st *store.Store) error {
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted profile and all of its records.")
			return nil
		})
	},
}

var profilesUseCmd = &cobra.Command{
	Use:   "use <profile id>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfileService(cmd, func(svc *profiles.Service, st *store.Store) error {
			if err := svc.SetActive(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Active profile: %s\n", args[0])
			return nil
		})
	},
}

func withProfileService(cmd *cobra.Command, fn func(*profiles.Service, *store.Store) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(profiles.NewService(st.ProfileRepo(), st.StateRepo()), st)
}

func init() {
	profilesCreateCmd.Flags().String("avatar", "", "Avatar emoji for the profile")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesRenameCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
	profilesCmd.AddCommand(profilesUseCmd)
}
