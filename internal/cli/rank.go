package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rollcall/employee"
	"rollcall/seqs"
)

type RankCmd struct{}

func NewRankCmd() *RankCmd {
	return &RankCmd{}
}

func (c *RankCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `rank "<name>, <experience>, <wage>, <uid>"...`,
		Short: "Rank employee records by value, highest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return fmt.Errorf("failed to get strict flag: %w", err)
			}

			var staff []employee.Employee
			for i, line := range args {
				e, err := employee.Parse(line)
				if err != nil {
					if strict {
						return fmt.Errorf("record %d: %w", i+1, err)
					}
					log.Warn("Skipping invalid record", "index", i+1, "error", err)
					continue
				}
				if slices.ContainsFunc(staff, e.Equal) {
					log.Warn("Skipping duplicate uid", "uid", e.UID, "name", e.Name)
					continue
				}
				staff = append(staff, e)
			}
			log.Debug("Parsed records", "valid", len(staff), "total", len(args))

			ranked := employee.Ranked(slices.Values(staff))
			if limit > 0 {
				ranked = seqs.Take(ranked, limit)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(false)
			table.SetBorder(true)
			table.SetHeader([]string{"#", "Name", "Experience", "Wage", "UID", "Value"})
			rank := 0
			for e := range ranked {
				rank++
				table.Append([]string{
					strconv.Itoa(rank),
					e.Name,
					strconv.FormatUint(uint64(e.Experience), 10),
					strconv.FormatUint(uint64(e.Wage), 10),
					strconv.FormatUint(uint64(e.UID), 10),
					formatValue(e),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Show only the top N records (0 shows all)")
	cmd.Flags().Bool("strict", false, "Fail on the first invalid record instead of skipping it")

	return cmd
}

func formatValue(e employee.Employee) string {
	if e.Wage == 0 {
		return "max"
	}
	return strconv.FormatUint(uint64(e.Value()), 10)
}
