package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calebcase/bigdecimal/decimal"
)

const (
	kindFlag     = "kind"
	nullableFlag = "nullable"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse VALUE...",
		Short: "Print the magnitude, scale and bytes of decimal values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				d, err := decimal.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}

				a.logger.Debug("parsed", zap.String("input", arg), zap.Stringer("value", d))

				fmt.Fprintf(out, "%s\tmagnitude=%s scale=%d bytes=%x\n", d, d.Magnitude(), d.Scale(), d.Bytes())
			}

			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX...",
		Short: "Print the value of serialized decimals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				data, err := hex.DecodeString(arg)
				if err != nil {
					return fmt.Errorf("decode hex %q: %w", arg, err)
				}

				d, err := decimal.FromBytes(data)
				if err != nil {
					return fmt.Errorf("decode %q: %w", arg, err)
				}

				a.logger.Debug("decoded", zap.Int("size", len(data)), zap.Int32("scale", d.Scale()))

				fmt.Fprintln(out, d)
			}

			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two decimal values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			y, err := decimal.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}

			a.logger.Debug("comparing", zap.Stringer("a", x), zap.Stringer("b", y))

			fmt.Fprintf(cmd.OutOrStdout(), "cmp=%d truncated=%d equal=%t\n", x.Cmp(y), x.CmpTruncated(y), x.Equal(y))

			return nil
		},
	}
}

// kindValue is a flag holding a conversion target.
type kindValue decimal.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string {
	if decimal.Kind(*k) == decimal.KindInvalid {
		return ""
	}

	return decimal.Kind(*k).String()
}

func (k *kindValue) Set(s string) error {
	kind, err := decimal.ParseKind(s)
	if err != nil {
		return err
	}

	*k = kindValue(kind)

	return nil
}

func (k *kindValue) Type() string {
	return "kind"
}

func (a *app) convertCmd() *cobra.Command {
	var kind kindValue

	cmd := &cobra.Command{
		Use:   "convert --kind KIND VALUE...",
		Short: "Narrow decimal values to a fixed width type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				d, err := decimal.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}

				v, err := d.Convert(decimal.Kind(kind))
				if err != nil {
					a.logger.Warn("conversion failed", zap.String("input", arg), zap.Stringer("kind", &kind), zap.Error(err))

					return fmt.Errorf("convert %q to %s: %w", arg, decimal.Kind(kind), err)
				}

				fmt.Fprintln(out, v)
			}

			return nil
		},
	}

	cmd.Flags().VarP(&kind, kindFlag, "k", "Target kind (bool, int8, ..., uint64, float32, float64, fixed)")

	if err := cmd.MarkFlagRequired(kindFlag); err != nil {
		panic(err)
	}

	return cmd
}

func (a *app) packCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Encode newline separated values from stdin as a stream on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nullable, err := cmd.Flags().GetBool(nullableFlag)
			if err != nil {
				return fmt.Errorf("get nullable flag: %w", err)
			}

			enc := decimal.NewEncoder(cmd.OutOrStdout(), decimal.Schema{Nullable: nullable})

			count := 0

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())

				if line == "" && nullable {
					err = enc.Encode(nil)
				} else {
					var d decimal.Decimal

					d, err = decimal.Parse(line)
					if err != nil {
						return fmt.Errorf("line %d: %w", count+1, err)
					}

					err = enc.Encode(&d)
				}

				if err != nil {
					return fmt.Errorf("line %d: %w", count+1, err)
				}

				count++
			}

			if err = scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			a.logger.Debug("packed", zap.Int("count", count))

			return nil
		},
	}

	cmd.Flags().Bool(nullableFlag, false, "Write empty lines as null")

	return cmd
}

func (a *app) unpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Decode a stream from stdin as newline separated values on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nullable, err := cmd.Flags().GetBool(nullableFlag)
			if err != nil {
				return fmt.Errorf("get nullable flag: %w", err)
			}

			dec := decimal.NewDecoder(cmd.InOrStdin(), decimal.Schema{Nullable: nullable})
			out := cmd.OutOrStdout()

			count := 0

			for {
				d, err := dec.Decode()
				if err == io.EOF {
					break
				}

				if err != nil {
					return fmt.Errorf("value %d: %w", count+1, err)
				}

				if d == nil {
					fmt.Fprintln(out)
				} else {
					fmt.Fprintln(out, d)
				}

				count++
			}

			a.logger.Debug("unpacked", zap.Int("count", count))

			return nil
		},
	}

	cmd.Flags().Bool(nullableFlag, false, "Print null values as empty lines")

	return cmd
}
