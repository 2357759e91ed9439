package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"png2pdf/contracts"
	"png2pdf/converter"
)

type InputFlags = contracts.InputFlags

const envPrefix = "PNG2PDF"

// initConfig wires config file and environment lookups into v. Flags bound
// later take precedence over both.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("png2pdf")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "png2pdf"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "png2pdf <input>",
		Short: "Convert a series of PNG images to a PDF document",
		Long: `png2pdf converts a directory of PNG images, or a single PNG file, into one PDF.

Every image becomes one page sized exactly to the image. Files are ordered the way
a human would number them (page2.png before page10.png). Pages can be rotated by
90° either from a page list or by answering a prompt for each page.

Settings can also come from PNG2PDF_* environment variables, a .env file, or
png2pdf.yaml in the current directory or ~/.config/png2pdf/.`,
		Example: `  # Convert every PNG in a directory, writing scans/output.pdf
  png2pdf scans

  # Rotate pages 1, 3 and 5 through 7
  png2pdf scans -o book.pdf -r "1,3,5-7"

  # Decide page by page
  png2pdf scans --interactive`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			setupLogging(v.GetBool("verbose"))
			if used := v.ConfigFileUsed(); used != "" {
				slog.Debug("using config file", "path", used)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := InputFlags{
				Input:       args[0],
				Output:      v.GetString("output"),
				RotatePages: v.GetString("rotate"),
				Interactive: v.GetBool("interactive"),
				Verbose:     v.GetBool("verbose"),
			}

			if flags.Output == "" {
				flags.Output = converter.DefaultOutputPath(flags.Input)
			}

			c := converter.NewConverter(converter.Options{
				Verbose:     flags.Verbose,
				Interactive: flags.Interactive,
				Stdout:      cmd.OutOrStdout(),
				Stdin:       cmd.InOrStdin(),
				Logger:      slog.Default(),
			})
			err := c.Convert(cmd.Context(), contracts.ConversionRequest{
				InputPath:   flags.Input,
				OutputPath:  flags.Output,
				RotatePages: flags.RotatePages,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ PDF created successfully: %s\n", flags.Output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output PDF file path (default: output.pdf next to the input)")
	cmd.Flags().BoolP("interactive", "i", false, "Interactive mode to set orientation for each image (overrides --rotate)")
	cmd.Flags().StringP("rotate", "r", "", `Rotate specific pages (e.g., "1,3,5-7")`)
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./png2pdf.yaml or ~/.config/png2pdf/png2pdf.yaml)")

	return cmd
}
