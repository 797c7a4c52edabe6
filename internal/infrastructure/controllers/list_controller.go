package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cratekit/cratever/internal/domain/commands"
	"github.com/cratekit/cratever/internal/domain/entities"
)

// ListController handles the list command.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List workspace packages with their versions",
		Long: `List the packages of the Cargo workspace with their versions
and manifest paths, as reported by 'cargo metadata'.

By default only workspace members are shown; use --all to include the
full dependency graph.`,
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("output", "", "Output format: table, json, or markdown")
	cmd.Flags().Bool("all", false, "Include the full dependency graph, not only workspace members")
}

// Execute runs the package listing.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	pkgs, err := it.command.Execute(ctx, commands.ListOptions{
		Dir: workspaceDir(cmd),
		All: all,
	})
	if err != nil {
		return err
	}

	if len(pkgs) == 0 {
		fmt.Println("No packages found.")
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = settings.Output
	}

	switch output {
	case "json":
		return printJSON(pkgs)
	case "markdown":
		printMarkdown(pkgs)
	default:
		printTable(pkgs)
	}

	return nil
}

func printTable(pkgs []entities.Package) {
	// Calculate column widths
	nameW := len("Name")
	versionW := len("Version")
	manifestW := len("Manifest")

	for _, p := range pkgs {
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
		if len(p.Version) > versionW {
			versionW = len(p.Version)
		}
		if len(p.ManifestPath) > manifestW {
			manifestW = len(p.ManifestPath)
		}
	}

	// Limit widths
	if nameW > 40 {
		nameW = 40
	}
	if manifestW > 60 {
		manifestW = 60
	}

	fmt.Printf("%-*s  %-*s  %-*s\n", nameW, "Name", versionW, "Version", manifestW, "Manifest")
	fmt.Println(strings.Repeat("-", nameW+versionW+manifestW+4))

	for _, p := range pkgs {
		fmt.Printf("%-*s  %-*s  %-*s\n",
			nameW, truncate(p.Name, nameW),
			versionW, p.Version,
			manifestW, truncate(p.ManifestPath, manifestW))
	}

	fmt.Println()
	fmt.Printf("Total: %d packages\n", len(pkgs))
}

func printMarkdown(pkgs []entities.Package) {
	fmt.Println("| Name | Version | Manifest |")
	fmt.Println("|------|---------|----------|")

	for _, p := range pkgs {
		fmt.Printf("| %s | %s | %s |\n", p.Name, p.Version, p.ManifestPath)
	}
}

func printJSON(pkgs []entities.Package) error {
	data, err := json.MarshalIndent(pkgs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode packages: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
