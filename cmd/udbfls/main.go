// Command udbfls inspects UDBF measurement files and adapter configurations:
// header fields, channel tables, decoded sample ranges, and the catalog a
// configuration would produce.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meshmon/udbf/adapter"
	"github.com/meshmon/udbf/catalog"
	"github.com/meshmon/udbf/file"
	"github.com/meshmon/udbf/format"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "udbfls",
		Short:         "Inspect UDBF measurement files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	logger := func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		log, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}

		return log
	}

	root.AddCommand(newHeaderCmd())
	root.AddCommand(newChannelsCmd())
	root.AddCommand(newReadCmd(logger))
	root.AddCommand(newCatalogCmd(logger))

	return root
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the file header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := file.Open(args[0])
			if err != nil {
				return err
			}

			h := r.Header()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:      %d\n", h.Version)
			fmt.Fprintf(out, "Vendor:       %s\n", h.Vendor)
			fmt.Fprintf(out, "ByteOrder:    %s\n", byteOrderName(h.ByteOrder))
			fmt.Fprintf(out, "SampleRate:   %g Hz\n", h.SampleRate)
			fmt.Fprintf(out, "SamplePeriod: %s\n", h.SamplePeriod())
			fmt.Fprintf(out, "StartTime:    %s\n", h.StartTimeAsTime().UTC())
			fmt.Fprintf(out, "Variables:    %d\n", h.VariableCount)
			fmt.Fprintf(out, "Samples:      %d\n", r.SampleCount())
			fmt.Fprintf(out, "Checksum:     %v\n", h.WithChecksum)
			if h.WithChecksum {
				if err := r.VerifyChecksum(); err != nil {
					fmt.Fprintf(out, "ChecksumOK:   false (%v)\n", err)
				} else {
					fmt.Fprintln(out, "ChecksumOK:   true")
				}
			}

			return nil
		},
	}
}

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels <file>",
		Short: "List the file's channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := file.Open(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-32s %-12s %-14s %-10s %s\n",
				"NAME", "DIRECTION", "TYPE", "ELEMENT", "UNIT")
			for _, v := range r.Variables() {
				fmt.Fprintf(out, "%-32s %-12s %-14s %-10s %s\n",
					v.Name, v.Direction, v.Type, v.Type.Element(), v.Unit)
			}

			return nil
		},
	}
}

func newReadCmd(logger func() *zap.Logger) *cobra.Command {
	var (
		channel string
		offset  int
		count   int
	)

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read and print a sample range of one channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			r, err := file.Open(path)
			if err != nil {
				return err
			}
			if count <= 0 {
				count = r.SampleCount() - offset
			}
			if count <= 0 {
				return nil
			}

			elem := 0
			element := format.ElementUnspecified
			for _, v := range r.Variables() {
				if v.Name == channel {
					elem = v.ElementSize()
					element = v.Type.Element()
					break
				}
			}
			if elem <= 0 {
				return fmt.Errorf("channel %q not readable in %s", channel, path)
			}

			svc, err := adapter.NewService(adapter.WithLogger(logger()))
			if err != nil {
				return err
			}

			req := adapter.Request{
				Path:    path,
				Channel: channel,
				Offset:  offset,
				Count:   count,
				Data:    make([]byte, count*elem),
				Status:  make([]byte, count),
			}
			if err := svc.Read(cmd.Context(), []adapter.Request{req}); err != nil {
				return err
			}

			h := r.Header()
			engine := h.Engine()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				ts := r.SampleTime(offset + i).UTC().Format("2006-01-02T15:04:05.000")
				if req.Status[i] == 0 {
					fmt.Fprintf(out, "%s\t<absent>\n", ts)
					continue
				}
				value := file.DecodeValue(req.Data[i*elem:], element, engine)
				fmt.Fprintf(out, "%s\t%g\n", ts, value)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", "", "original on-disk channel name (required)")
	cmd.Flags().IntVar(&offset, "offset", 0, "first sample index")
	cmd.Flags().IntVar(&count, "count", 0, "sample count (default: rest of file)")
	_ = cmd.MarkFlagRequired("channel")

	return cmd
}

func newCatalogCmd(logger func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <config.json>",
		Short: "Build and print the catalog of an adapter configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := catalog.LoadConfig(args[0])
			if err != nil {
				return err
			}

			builder, err := catalog.NewBuilder(catalog.GlobLocator{},
				catalog.WithLogger(logger()))
			if err != nil {
				return err
			}

			channels, err := builder.Build(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-18s %-28s %-10s %-12s %-10s %s\n",
				"ID", "NAME", "ELEMENT", "PERIOD", "UNIT", "GROUPS")
			for _, ch := range channels {
				fmt.Fprintf(out, "%016x %-28s %-10s %-12s %-10s %s\n",
					ch.ID, ch.Name, ch.Element, ch.SamplePeriod, ch.Unit,
					strings.Join(ch.Groups, ","))
			}

			return nil
		},
	}
}

func byteOrderName(flag uint8) string {
	if flag != 0 {
		return "big-endian"
	}

	return "little-endian"
}
