package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yungbote/casebook/internal/services"
)

func newAddCmd(c *cli) *cobra.Command {
	var sub services.CaseSubmission
	var diagramPath string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a case",
		Long: `Add validates and stores a case exactly as the web form does.

Example:
  casectl add --description "Design a rate limiter" --difficulty senior
  casectl add --title Queue --description "Design a queue" --difficulty middle --diagram queue.excalidraw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if diagramPath != "" {
				att, err := services.ReadAttachment(diagramPath)
				if err != nil {
					return err
				}
				sub.Attachment = att
			}
			created, err := c.svc.Submit(cmd.Context(), sub)
			if err != nil {
				return fmt.Errorf("add case: %w", err)
			}
			if c.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created case %d\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub.Title, "title", "", "case title")
	cmd.Flags().StringVar(&sub.Description, "description", "", "case description (required)")
	cmd.Flags().StringVar(&sub.Difficulty, "difficulty", "", "difficulty label (required)")
	cmd.Flags().StringVar(&diagramPath, "diagram", "", "path to an .excalidraw file")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.svc.List(cmd.Context(), difficulty)
			if err != nil {
				return fmt.Errorf("list cases: %w", err)
			}
			if c.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeCaseTable(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only cases with this exact difficulty")
	return cmd
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			row, err := c.svc.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("show case %d: %w", id, err)
			}
			return c.printCase(cmd.OutOrStdout(), row)
		},
	}
}

func newRandomCmd(c *cli) *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := c.svc.Random(cmd.Context(), difficulty)
			if errors.Is(err, services.ErrNoMatchingCase) {
				return fmt.Errorf("no case with difficulty %q", difficulty)
			}
			if err != nil {
				return fmt.Errorf("random case: %w", err)
			}
			if row == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "No cases yet.")
				return nil
			}
			return c.printCase(cmd.OutOrStdout(), row)
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only pick from this difficulty")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a case's diagram to a file",
		Long: `Export writes the attached diagram under the same name the download
endpoint uses, or to --output. Use --output - for stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := c.svc.Diagram(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("export case %d: %w", id, err)
			}
			if output == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), d.Content)
				return err
			}
			path := output
			if path == "" {
				path = d.Filename
			}
			if err := os.WriteFile(path, []byte(d.Content), 0o644); err != nil {
				return fmt.Errorf("write diagram: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Clean(path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default: download filename)")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid case id %q", raw)
	}
	return id, nil
}
