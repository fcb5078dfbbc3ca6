package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gridlayout"
	"gridlayout/pkg/config"
	"gridlayout/pkg/item"
	"gridlayout/pkg/layout"
	"gridlayout/pkg/render"
	"gridlayout/pkg/script"
)

var (
	cfgFile    string
	layoutFile string
	outFile    string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridlayout",
		Short: "grid placement engine tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				gridlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a layout definition to a PNG snapshot",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&cfgFile, "config", "", "path to TOML grid config (defaults apply if omitted)")
	renderCmd.Flags().StringVar(&layoutFile, "layout", "", "path to JS layout definition (required)")
	renderCmd.Flags().StringVar(&outFile, "out", "layout.png", "output PNG path")
	renderCmd.MarkFlagRequired("layout")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check a layout definition against its grid config",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&cfgFile, "config", "", "path to TOML grid config (defaults apply if omitted)")
	validateCmd.Flags().StringVar(&layoutFile, "layout", "", "path to JS layout definition (required)")
	validateCmd.MarkFlagRequired("layout")

	rootCmd.AddCommand(renderCmd, validateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadLayout() (*layout.Layout, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	}

	specs, err := script.LoadFile(layoutFile)
	if err != nil {
		return nil, err
	}

	l := layout.New(cfg.Grid())
	for _, spec := range specs {
		opts := item.DefaultOptions()
		opts.Static = spec.Static
		opts.Bounds = spec.Bounds
		opts.Direction = cfg.Dir()
		opts.UseTransforms = cfg.UseTransforms
		opts.UsePercent = cfg.UsePercent
		if _, err := l.Add(spec.ID, spec.Rect, opts); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	if err := render.WritePNG(l, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d items, %.0fx%.0f px)\n",
		outFile, l.Len(), l.Config.ContainerWidth, l.Height())
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d items on a %d-column grid, bottom row %d\n",
		l.Len(), l.Config.Columns, l.BottomRow())
	return nil
}
