package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resolver-generator/internal/catalog"
	"resolver-generator/internal/diagnostic"
	"resolver-generator/internal/gen"
	"resolver-generator/internal/spec"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resolver-generator",
		Short:         "Generate reflection-free property resolvers from a Go type catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		manifestPath string
		outDir       string
		pkgName      string
	)

	cmd := &cobra.Command{
		Use:   "generate packages...",
		Short: "Emit one dispatch artifact per declared property resolver",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, specs, config, err := loadInputs(args, manifestPath)
			if err != nil {
				return err
			}

			if outDir != "" {
				config.OutputDir = outDir
			}
			if pkgName != "" {
				config.PackageName = pkgName
			}

			files, diags, err := gen.Run(cat, specs, config)
			if err != nil {
				return err
			}

			reportDiagnostics(cmd, diags)

			// Artifacts are still written first-wins; duplicate
			// declarations block the run afterwards.
			if err := gen.WriteFiles(files, config.OutputDir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d resolver file(s) to %s\n",
				len(files), config.OutputDir)

			if diags.HasErrors() {
				return fmt.Errorf("%d duplicate resolver declaration(s)", len(diags.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to a YAML resolver manifest")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides manifest)")
	cmd.Flags().StringVar(&pkgName, "pkg", "", "generated package name (overrides manifest)")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "check packages...",
		Short: "Report duplicate resolver declarations without generating",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, specs, _, err := loadInputs(args, manifestPath)
			if err != nil {
				return err
			}

			diags := diagnostic.CheckDuplicates(specs)
			reportDiagnostics(cmd, diags)

			if diags.HasErrors() {
				return fmt.Errorf("%d duplicate resolver declaration(s)", len(diags.Errors))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "no duplicate resolver declarations")

			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to a YAML resolver manifest")

	return cmd
}

// loadInputs builds the catalog and the raw specification list: source
// directives from the loaded packages first, then manifest entries.
// Manifest output settings seed the configuration; flags override later.
func loadInputs(
	patterns []string,
	manifestPath string,
) (*catalog.Catalog, []spec.Resolver, gen.Config, error) {
	config := gen.DefaultConfig()

	indexer := catalog.NewIndexer()

	cat, err := indexer.Load(patterns...)
	if err != nil {
		return nil, nil, config, err
	}

	specs := spec.Collect(indexer.Packages())

	if manifestPath != "" {
		mf, err := spec.LoadFile(manifestPath)
		if err != nil {
			return nil, nil, config, err
		}

		specs = append(specs, mf.Specs()...)

		if mf.Output.Dir != "" {
			config.OutputDir = mf.Output.Dir
		}
		if mf.Output.Package != "" {
			config.PackageName = mf.Output.Package
		}
	}

	return cat, specs, config, nil
}

func reportDiagnostics(cmd *cobra.Command, diags diagnostic.Diagnostics) {
	out := cmd.ErrOrStderr()

	for _, d := range diags.Infos {
		fmt.Fprintln(out, d.String())
	}
	for _, d := range diags.Warnings {
		fmt.Fprintln(out, d.String())
	}
	for _, d := range diags.Errors {
		fmt.Fprintln(out, d.String())
	}
}
