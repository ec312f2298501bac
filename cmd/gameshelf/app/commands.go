// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/gameshelf/auth"
	"github.com/stacklok/gameshelf/lifecycle"
)

func (a *app) newAuthCmd() *cobra.Command {
	var (
		token        string
		refreshToken string
		accountID    string
		expiresIn    time.Duration
		logout       bool
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Store or remove the catalog access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if logout {
				if err := a.tokens.Logout(); err != nil {
					return err
				}
				fmt.Fprintln(out, "Successfully logged out")
				return nil
			}

			if token == "" {
				return errors.New("--token is required unless --logout is given")
			}

			tok := auth.Token{AccessToken: token, RefreshToken: refreshToken, AccountID: accountID}
			if expiresIn > 0 {
				tok.ExpiresAt = time.Now().Add(expiresIn)
			}
			if err := a.manager.Authenticate(tok); err != nil {
				return err
			}
			fmt.Fprintln(out, "Successfully authenticated")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "catalog access token")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "catalog refresh token")
	cmd.Flags().StringVar(&accountID, "account-id", "", "account the token belongs to")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "token lifetime (0 means no expiry)")
	cmd.Flags().BoolVar(&logout, "logout", false, "remove the stored token")
	cmd.MarkFlagsMutuallyExclusive("token", "logout")

	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var installed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the remote library or installed games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if installed {
				records, err := a.manager.ListInstalled()
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(out, "No games installed")
					return nil
				}
				fmt.Fprintln(out, "Installed Games:")
				for _, r := range records {
					fmt.Fprintf(out, "  %s - %s (v%s)\n", r.AppName, r.AppTitle, r.AppVersion)
					fmt.Fprintf(out, "    Path: %s\n", r.InstallPath)
				}
				return nil
			}

			games, err := a.manager.ListLibrary(cmd.Context())
			if err != nil {
				return withAuthHint(err)
			}
			if len(games) == 0 {
				fmt.Fprintln(out, "No games in library")
				return nil
			}
			fmt.Fprintln(out, "Library:")
			for _, g := range games {
				fmt.Fprintf(out, "  %s - %s (v%s)\n", g.AppName, g.AppTitle, g.AppVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&installed, "installed", false, "list installed games instead of the remote library")
	return cmd
}

func (a *app) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <app_name>",
		Short: "Register a game as installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Installing game: %s\n", args[0])

			rec, err := a.manager.Install(cmd.Context(), args[0])
			if err != nil {
				return withAuthHint(fmt.Errorf("failed to install game: %w", err))
			}

			fmt.Fprintf(out, "Game installed: %s (v%s) at %s\n", rec.AppTitle, rec.AppVersion, rec.InstallPath)
			fmt.Fprintln(out, "Note: game content is not downloaded; only the install record was created.")
			return nil
		},
	}
}

func (a *app) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <app_name>",
		Short: "Start an installed game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.manager.Launch(args[0])
			if err != nil {
				return fmt.Errorf("failed to launch game: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Game launched (pid %d)\n", pid)
			return nil
		},
	}
}

func (a *app) newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <app_name>",
		Short: "Remove an installed game and its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.manager.Uninstall(args[0]); err != nil {
				return fmt.Errorf("failed to uninstall game: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Game uninstalled successfully")
			return nil
		},
	}
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <app_name>",
		Short: "Show the record of an installed game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.manager.Info(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Game Information:")
			fmt.Fprintf(out, "  Name:         %s\n", rec.AppName)
			fmt.Fprintf(out, "  Title:        %s\n", rec.AppTitle)
			fmt.Fprintf(out, "  Version:      %s\n", rec.AppVersion)
			fmt.Fprintf(out, "  Install Path: %s\n", rec.InstallPath)
			fmt.Fprintf(out, "  Executable:   %s\n", rec.Executable)
			return nil
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication state and configuration paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			authenticated := "No"
			if a.manager.IsAuthenticated() {
				authenticated = "Yes"
			}

			catalogURL := a.cfg.Catalog.URL
			if catalogURL == "" {
				catalogURL = "(not configured)"
			}

			fmt.Fprintln(out, "gameshelf status")
			fmt.Fprintf(out, "  Version:           %s\n", Version)
			fmt.Fprintf(out, "  Authenticated:     %s\n", authenticated)
			fmt.Fprintf(out, "  Catalog:           %s\n", catalogURL)
			fmt.Fprintf(out, "  Install Directory: %s\n", a.cfg.InstallDir)
			fmt.Fprintf(out, "  Data Directory:    %s\n", a.cfg.DataDir)
			fmt.Fprintf(out, "  Config Path:       %s\n", a.configPath)
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeYAML(cmd.OutOrStdout(), a.cfg.Marshal)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Save(a.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", a.configPath)
			return nil
		},
	})

	return cmd
}

func writeYAML(w io.Writer, marshal func() ([]byte, error)) error {
	data, err := marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func withAuthHint(err error) error {
	if errors.Is(err, lifecycle.ErrAuthRequired) {
		return fmt.Errorf("%w\nRun 'gameshelf auth --token <token>' first", err)
	}
	return err
}
