package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/jsonschema"
	"github.com/catalystneuro/ndx-anatomical-localization/store"
)

// errInvalid is returned by validate when at least one file fails; the
// issues themselves are already printed.
var errInvalid = errors.New("validation failed")

func newRootCmd(cfg Config) *cobra.Command {
	var log *slog.Logger
	root := &cobra.Command{
		Use:           "anatloc",
		Short:         "Anatomical localization documents",
		Long:          "anatloc validates, converts and inspects documents of the ndx-anatomical-localization namespace.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = cfg.apply(cmd.ErrOrStderr())
		},
	}
	logger := func() *slog.Logger { return log }
	root.AddCommand(
		newValidateCmd(logger),
		newConvertCmd(cfg, logger),
		newSchemaCmd(),
		newSpacesCmd(),
		newOrientationCmd(),
	)
	return root
}

func newValidateCmd(log func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check documents and report every issue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				_, err := store.ReadFile(cmd.Context(), path, store.Options{Logger: log()})
				if err == nil {
					fmt.Fprintf(out, "%s: ok\n", path)
					continue
				}
				failed++
				log().Debug("invalid document", slog.String("path", path), slog.Any("error", err))
				printIssues(out, path, err)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errInvalid, failed, len(args))
			}
			return nil
		},
	}
}

func printIssues(w io.Writer, path string, err error) {
	iss, ok := anatloc.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(w, "%s: %s [%s]\n", path, it.Error(), it.Code)
	}
}

func newConvertCmd(cfg Config, log func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Rewrite a document in the format of OUT's extension (\"-\" writes to stdout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := store.Options{Logger: log()}
			f, err := store.ReadFile(ctx, args[0], opts)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if args[1] == "-" {
				format, err := cfg.format()
				if err != nil {
					return err
				}
				return store.Write(ctx, cmd.OutOrStdout(), f, format, opts)
			}
			if err := store.WriteFile(ctx, args[1], f, opts); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			log().Info("converted", slog.String("in", args[0]), slog.String("out", args[1]))
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the document format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.JSONSchema()
			if err != nil {
				return err
			}
			b, err := jsonschema.MarshalIndent(s)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newSpacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the predefined spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tSPACE\tORIENTATION\tUNITS\tEXTENT\tORIGIN")
			for _, key := range anatloc.PredefinedSpaceNames() {
				s, err := anatloc.PredefinedSpace(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", key, s.SpaceName, s.Orientation, s.Units, formatExtent(s.Extent), s.Origin)
			}
			return tw.Flush()
		},
	}
}

func formatExtent(v []float64) string {
	if v == nil {
		return "-"
	}
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, "x")
}

var axisNames = map[byte]string{
	'A': "anterior", 'P': "posterior",
	'L': "left", 'R': "right",
	'S': "superior", 'I': "inferior",
}

func newOrientationCmd() *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "orientation CODE",
		Short: "Validate an orientation code and explain its axes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if legacy {
				migrated, err := anatloc.MigrateLegacyOrientation(code)
				if err != nil {
					return err
				}
				code = migrated
			}
			o, err := anatloc.ParseOrientation(code)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, o)
			axes := o.Axes()
			for i, name := range []string{"x", "y", "z"} {
				fmt.Fprintf(out, "%s: +%s (%s)\n", name, axisNames[code[i]], axes[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "accept the D/V alphabet and rewrite it to S/I")
	return cmd
}
