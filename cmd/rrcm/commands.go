package rrcm

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mizuki0629/rrcm/internal/version"
	"github.com/mizuki0629/rrcm/pkg/config"
	"github.com/mizuki0629/rrcm/pkg/core"
	"github.com/mizuki0629/rrcm/pkg/style"
	"github.com/mizuki0629/rrcm/pkg/trash"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init [url]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile(cmd)

			if len(args) == 1 {
				url := args[0]
				log.Info().Str("path", path).Str("url", url).Msg("Downloading configuration")
				if err := config.Download(path, url); err != nil {
					return err
				}
				fmt.Printf(MsgConfigDownloaded, path, url)
			} else {
				log.Info().Str("path", path).Msg("Writing starter configuration")
				if err := config.Init(path); err != nil {
					return err
				}
				fmt.Printf(MsgConfigCreated, path)
			}

			fmt.Print(MsgEditHint)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}

			plans, err := core.Status(opts)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println(MsgNothingToShow)
				return nil
			}

			hasConflict := false
			for _, tp := range plans {
				if tp.Err != nil {
					header := style.TitleStyle.Render(tp.Repo + "/" + tp.Target)
					fmt.Println(header + " " + style.ConflictStyle.Render(tp.Err.Error()))
					continue
				}
				fmt.Println(style.RenderPlan(tp.Repo, tp.Plan))
				if len(tp.Plan.Conflicts()) > 0 {
					hasConflict = true
				}
			}

			if hasConflict {
				fmt.Println(style.MutedStyle.Render(MsgConflictHint))
			}
			return nil
		},
	}

	cmd.Flags().StringP("repo", "r", "", MsgFlagRepo)
	return cmd
}

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deploy",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			tr, err := trash.New()
			if err != nil {
				return fmt.Errorf(MsgErrTrash, err)
			}

			log.Info().Bool("force", force).Msg("Deploying")
			reports, err := core.Deploy(opts, tr, force)
			if err != nil {
				return err
			}

			printReports(reports)
			if core.Failed(reports) {
				return fmt.Errorf(MsgDeployFailures)
			}
			return nil
		},
	}

	cmd.Flags().StringP("repo", "r", "", MsgFlagRepo)
	cmd.Flags().Bool("force", false, MsgFlagForce)
	return cmd
}

func newUndeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undeploy",
		Short:   MsgUndeployShort,
		Long:    MsgUndeployLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}

			log.Info().Msg("Removing deployed symlinks")
			reports, err := core.Undeploy(opts)
			if err != nil {
				return err
			}

			printReports(reports)
			if core.Failed(reports) {
				return fmt.Errorf(MsgUndeployFailures)
			}
			return nil
		},
	}

	cmd.Flags().StringP("repo", "r", "", MsgFlagRepo)
	return cmd
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			tr, err := trash.New()
			if err != nil {
				return fmt.Errorf(MsgErrTrash, err)
			}

			log.Info().Bool("force", force).Msg("Updating repositories")
			updates, reports, err := core.Update(cmd.Context(), opts, tr, force)
			if err != nil {
				return err
			}

			updateFailed := false
			for _, u := range updates {
				if u.Err != nil {
					fmt.Printf(MsgRepoUpdated, u.Repo, style.ConflictStyle.Render(u.Err.Error()))
					updateFailed = true
					continue
				}
				fmt.Printf(MsgRepoUpdated, u.Repo, string(u.Action))
			}

			printReports(reports)
			switch {
			case updateFailed:
				return fmt.Errorf(MsgUpdateFailures)
			case core.Failed(reports):
				return fmt.Errorf(MsgDeployFailures)
			}
			return nil
		},
	}

	cmd.Flags().StringP("repo", "r", "", MsgFlagRepo)
	cmd.Flags().Bool("force", false, MsgFlagForce)
	return cmd
}

// printReports renders one block per target, target-level errors included.
func printReports(reports []core.TargetReport) {
	for _, tr := range reports {
		if tr.Err != nil {
			header := style.TitleStyle.Render(tr.Repo + "/" + tr.Target)
			fmt.Println(header + " " + style.ConflictStyle.Render(tr.Err.Error()))
			continue
		}
		fmt.Println(style.RenderReport(tr.Repo, tr.Report))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rrcm version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
