package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/limbo/serenity/internal/bootstrap"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/cleanup"
	"github.com/limbo/serenity/pkg/config"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/spf13/cobra"
)

var (
	envPath string
	userID  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "serenityctl",
		Short:         "Maintenance tool for Serenity workspaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&envPath, "env", config.DefaultEnvPath, "dotenv file path")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "workspace owner id")
	rootCmd.MarkPersistentFlagRequired("user")

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(resetAssessmentCmd())
	rootCmd.AddCommand(clearCmd())

	err := rootCmd.Execute()
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openWorkspace wires the configured store and loads workspace of --user.
func openWorkspace(ctx context.Context) (*service.Workspace, *config.Config, error) {
	cfg := config.New(envPath)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	store, err := repository.NewStore(bootstrap.StoreOptions(cfg))
	if err != nil {
		return nil, nil, err
	}
	ws := bootstrap.Workspaces(cfg, store, logger).Get(ctx, userID)
	return ws, cfg, nil
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write wellness report of a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, cfg, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			fallback := &entity.User{ID: userID}
			if service.IsGuestID(userID) {
				fallback = service.GuestUser(userID)
			}
			report := ws.Report(ctx, fallback, cfg.GetString("APP_VERSION"))
			data, err := service.RenderReport(report)
			if err != nil {
				return err
			}
			if out == "" {
				out = service.ReportFilename(report.ExportInfo.GeneratedAt)
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err = os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (default wellness-report-<date>.json)`)
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print mood and assessment summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			summary := ws.Ledger.Summary()
			state := ws.Engine.State()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Entries:        %d\n", len(ws.Ledger.Entries()))
			fmt.Fprintf(w, "Current streak: %d\n", summary.CurrentStreak)
			fmt.Fprintf(w, "Today:          %d\n", summary.EntriesToday)
			fmt.Fprintf(w, "This week:      %d (avg intensity %.1f)\n", summary.WeeklyEntries, summary.WeeklyAverageIntensity)
			fmt.Fprintf(w, "Assessment:     %s (%d/%d answered)\n", state.Status, state.Answered, state.Total)
			fmt.Fprintf(w, "Messages:       %d\n", len(ws.Conversation.Messages()))
			return nil
		},
	}
}

func resetAssessmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-assessment",
		Short: "Drop questionnaire answers and results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			if err = ws.Engine.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Assessment reset")
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored value of a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			err = ws.ClearAllData(cmd.Context(), yes)
			if errors.Is(err, errorvalues.ErrConfirmationRequired) {
				return errors.New("refusing to clear without --yes")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workspace cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
