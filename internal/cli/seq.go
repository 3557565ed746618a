package cli

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rollcall/seqs"
)

type SeqCmd struct{}

func NewSeqCmd() *SeqCmd {
	return &SeqCmd{}
}

func (c *SeqCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Print number sequences",
	}
	cmd.AddCommand(
		c.generatorCmd("squares", "Print the squares of the whole numbers", seqs.SquareWholeNumbers),
		c.generatorCmd("fibonacci", "Print the Fibonacci numbers", func() iter.Seq[uint32] {
			return seqs.NewFibonacci().All()
		}),
		c.sumSquaresCmd(),
		c.boundedCmd(),
		c.evensCmd(),
	)
	return cmd
}

func (c *SeqCmd) generatorCmd(use, short string, gen func() iter.Seq[uint32]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return fmt.Errorf("failed to get count flag: %w", err)
			}
			if count < 0 {
				return fmt.Errorf("invalid count: %d", count)
			}
			return printSeq(cmd.OutOrStdout(), seqs.Take(gen(), count))
		},
	}
	cmd.Flags().IntP("count", "n", 10, "Number of values to print")
	return cmd
}

func (c *SeqCmd) sumSquaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum-squares <value>...",
		Short: "Print the sum of the squares of the values",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args, parseUint32)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seqs.SumOfSquares(slices.Values(vals)))
			return err
		},
	}
}

func (c *SeqCmd) boundedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounded -- <value>...",
		Short: "Print the absolute values that do not exceed 100",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args, parseInt32)
			if err != nil {
				return err
			}
			return printSeq(cmd.OutOrStdout(), seqs.BoundedAbsoluteValues(slices.Values(vals)))
		},
	}
}

func (c *SeqCmd) evensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evens <n> <value>...",
		Short: "Print the first n even values following n",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			vals, err := parseArgs(args, parseUint32)
			if err != nil {
				return err
			}
			evens, ok := seqs.FirstNEven(slices.Values(vals))
			if !ok {
				log.Warn("No count given")
				return nil
			}
			return printSeq(cmd.OutOrStdout(), evens)
		},
	}
}

func printSeq(w io.Writer, seq iter.Seq[uint32]) error {
	var parts []string
	for v := range seqs.Map(seq, formatUint32) {
		parts = append(parts, v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func parseArgs[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for v, err := range seqs.TryMap(slices.Values(args), parse) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return int32(v), nil
}

func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
