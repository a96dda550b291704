package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

func newRacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "races",
		Short: "List races and subraces with their base properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers := []string{"race", "subrace"}
			for _, code := range property.BaseCodes() {
				headers = append(headers, code.Short())
			}
			headers = append(headers, "toughness", "size", "senses", "kg", "cm")

			t := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
			for _, row := range a.tables.RacesTable().Rows() {
				cells := []string{row.Race, row.Subrace}
				for _, code := range property.BaseCodes() {
					cells = append(cells, strconv.Itoa(row.Property(code)))
				}
				cells = append(cells,
					strconv.Itoa(row.Toughness),
					strconv.Itoa(row.Size),
					strconv.Itoa(row.Senses),
					strconv.FormatFloat(float64(row.WeightInKg), 'f', -1, 64),
					strconv.FormatFloat(float64(row.HeightInCm), 'f', -1, 64),
				)
				t.Row(cells...)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func newProfessionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "professions",
		Short: "List professions and their primary properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().Border(lipgloss.NormalBorder()).Headers("profession", "name", "primary")
			for _, p := range a.professions.All() {
				t.Row(p.ID, p.Name, strings.Join(p.PrimaryProperties, ", "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}
