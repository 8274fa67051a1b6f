package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/clubhouse/internal/config"
	"github.com/Iron-Ham/clubhouse/internal/styles"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage color themes",
	Long: `Manage color themes for the roster display.

Clubhouse ships built-in themes and loads custom themes from YAML files in
~/.config/clubhouse/themes/. Start a custom theme with
'clubhouse themes create <name>', then select it with:

  clubhouse config set display.theme <name>`,
	RunE: runThemesList,
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemesList,
}

var themesExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  clubhouse themes export default                   # Print default theme
  clubhouse themes export nord ~/.config/clubhouse/themes/club.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemesExport,
}

var themesCreateCmd = &cobra.Command{
	Use:   "create <theme-name>",
	Short: "Create a custom theme from an existing one",
	Long: `Create a custom theme file in the themes directory, copying the colors of
an existing theme. Edit the file afterwards and select it with
'clubhouse config set display.theme <theme-name>'.

Examples:
  clubhouse themes create club
  clubhouse themes create club --from nord`,
	Args: cobra.ExactArgs(1),
	RunE: runThemesCreate,
}

var themesCreateFrom string

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesExportCmd)
	themesCmd.AddCommand(themesCreateCmd)

	themesCreateCmd.Flags().StringVar(&themesCreateFrom, "from", string(styles.ThemeDefault), "Theme to copy colors from")
}

func runThemesList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, loadErrs := styles.DiscoverCustomThemes()
	if len(loadErrs) > 0 {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(errOut, "  - %v\n", err)
		}
		fmt.Fprintln(errOut)
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if customNames := styles.CustomThemeNames(); len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())

	return nil
}

func runThemesExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	_, loadErrs := styles.DiscoverCustomThemes()

	if !styles.IsValidTheme(themeName) {
		// A file with this name may exist but have failed to load
		for _, err := range loadErrs {
			errStr := err.Error()
			if strings.HasPrefix(errStr, themeName+".yaml:") || strings.HasPrefix(errStr, themeName+".yml:") {
				return fmt.Errorf("theme '%s' exists but failed to load: %v", themeName, err)
			}
		}
		return fmt.Errorf("unknown theme: %s\nRun 'clubhouse themes list' to see available themes", themeName)
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemesCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !config.ValidThemeName(name) {
		return fmt.Errorf("invalid theme name %q: use lowercase letters, digits, '-' or '_'", name)
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot override built-in theme '%s'", name)
	}

	_, _ = styles.DiscoverCustomThemes()
	for _, ext := range []string{".yaml", ".yml"} {
		if _, err := os.Stat(filepath.Join(styles.ThemesDir(), name+ext)); err == nil {
			return fmt.Errorf("theme '%s' already exists\nEdit it in %s", name, styles.ThemesDir())
		}
	}

	theme, err := styles.ThemeFileFor(styles.ThemeName(themesCreateFrom))
	if err != nil {
		return fmt.Errorf("%w\nRun 'clubhouse themes list' to see available themes", err)
	}
	theme.Name = name
	theme.Author = ""
	theme.Description = fmt.Sprintf("Based on '%s'", themesCreateFrom)

	path, err := styles.SaveTheme(name, theme)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created theme %s at %s\n", name, path)
	return nil
}
