package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Vansh-Raja/create-grid-selector/internal/app"
	"github.com/Vansh-Raja/create-grid-selector/internal/config"
	"github.com/Vansh-Raja/create-grid-selector/internal/scaffold"
	"github.com/Vansh-Raja/create-grid-selector/internal/securestore"
	"github.com/Vansh-Raja/create-grid-selector/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) previewCmd() *cobra.Command {
	var rows, columns int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Try the grid selector in the terminal",
		Long: `Renders the Grid Selector widget in the terminal. Click a cell (or move with
the arrow keys and press enter) to select the rectangle from the top-left
corner to that cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") {
				rows = c.cfg.Preview.Rows
			}
			if !cmd.Flags().Changed("columns") {
				columns = c.cfg.Preview.Columns
			}
			if err := (scaffold.Options{Columns: columns, Rows: rows}).Validate(); err != nil {
				return err
			}

			m := app.NewModel(widget.Props{Rows: rows, Columns: columns}, c.cfg.Preview.VimKeys)
			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),       // Use alternate screen buffer
				tea.WithMouseCellMotion(), // Enable mouse support
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running preview: %w", err)
			}
			if fm, ok := final.(app.Model); ok {
				sel := fm.Selection()
				bounds := widget.NoSelectionLabel
				if b, ok := sel.Bounds(); ok {
					bounds = b.String()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Selection coordinates: %s\nTotal cells selected: %d\n", bounds, sel.Count())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "y", 8, "number of rows")
	cmd.Flags().IntVarP(&columns, "columns", "x", 16, "number of columns")
	return cmd
}

func (c *cli) authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the token used to clone private starter kits",
	}

	var token string
	var fromStdin bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Store a token in the OS keyring",
		Example: `  printf 'TOKEN' | create-grid-selector auth set --token-stdin
  create-grid-selector auth set --token TOKEN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromStdin == (token != "") {
				return fmt.Errorf("provide exactly one of --token or --token-stdin")
			}
			if token != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: --token may leak via shell history/process args; prefer --token-stdin")
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read token from stdin: %w", err)
				}
				token = string(b)
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}
			if err := securestore.StoreTemplateToken(token); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}
			if c.cfg.Template.AuthMethod == config.AuthNone {
				c.cfg.Template.AuthMethod = config.AuthToken
				if err := config.Save(c.cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token: stored")
			return nil
		},
	}
	set.Flags().StringVar(&token, "token", "", "token value")
	set.Flags().BoolVar(&fromStdin, "token-stdin", false, "read the token from stdin")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := securestore.GetTemplateToken()
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "token: stored")
			case errors.Is(err, securestore.ErrNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "token: not set")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "token: unavailable")
				c.logger.Debug("token lookup failed", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "auth method: %s\n", c.cfg.Template.AuthMethod)
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := securestore.ClearTemplateToken(); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}
			if c.cfg.Template.AuthMethod == config.AuthToken {
				c.cfg.Template.AuthMethod = config.AuthNone
				if err := config.Save(c.cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token: cleared")
			return nil
		},
	}

	cmd.AddCommand(set, status, clearCmd)
	return cmd
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := json.MarshalIndent(c.cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			},
		},
	)
	return cmd
}
