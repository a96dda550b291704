package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/drdsheet/internal/game/character"
	"github.com/cory-johannsen/drdsheet/internal/game/dice"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func newSheetCmd(a *app) *cobra.Command {
	var (
		req    character.Request
		weight float64
		height float64
		age    int
		format string
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Derive the property sheet of a character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Body.WeightInKg = property.WeightInKg(weight)
			req.Body.HeightInCm = property.HeightInCm(height)
			req.Body.Age = property.Age(age)

			var opts []character.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, character.WithDiceSource(dice.NewSeededSource(seed)))
			}
			c, err := character.NewBuilder(a.tables, a.professions, a.logger, opts...).Build(req)
			if err != nil {
				return err
			}
			sheet := character.NewSheet(c)
			switch format {
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), sheet)
			case "text":
				return writeText(cmd.OutOrStdout(), sheet)
			}
			return fmt.Errorf("unknown format %q (supported: yaml, text)", format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "Nameless", "character name")
	f.StringVar(&req.Race, "race", "human", "race")
	f.StringVar(&req.Subrace, "subrace", "common", "subrace")
	f.StringVar(&req.Gender, "gender", "male", "gender: male or female")
	f.StringVar(&req.Profession, "profession", "commoner", "profession")
	f.StringVar(&req.Fate, "fate", "", "talents, e.g. strength=1,agility=2")
	f.StringVar(&req.FateDice, "fate-dice", "", "talents rolled and added to --fate, e.g. strength=1d3-1,agility=1d3")
	f.Uint64Var(&seed, "seed", 0, "seed for --fate-dice rolls; unset rolls with crypto/rand")
	f.StringArrayVar(&req.Levels, "level", nil, "primary:secondary pick of each level after the first (repeatable)")
	f.Float64Var(&weight, "weight", 0, "weight adjustment in kg")
	f.Float64Var(&height, "height", 0, "height adjustment in cm")
	f.IntVar(&age, "age", 18, "age in years")
	f.StringVar(&format, "format", "yaml", "output format: yaml or text")
	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, s character.Sheet) error {
	head := fmt.Sprintf("%s (%s, %s %s, %s level %d)", s.Name, s.ID, s.Gender, s.Race, s.Profession, s.Level)

	props := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "unlimited", "1st level", "loss", "next levels", "value")
	for _, p := range s.Properties {
		props.Row(p.Label, itoa(p.Unlimited), itoa(p.FirstLvl), itoa(p.Loss), itoa(p.NextLvls), itoa(p.Value))
	}

	d := s.Derived
	derived := table.New().
		Border(lipgloss.NormalBorder()).
		Rows(
			[]string{"weight kg", strconv.FormatFloat(s.Body.WeightInKg, 'f', -1, 64)},
			[]string{"height cm", strconv.FormatFloat(s.Body.HeightInCm, 'f', -1, 64)},
			[]string{"height", itoa(s.Body.Height)},
			[]string{"size", itoa(s.Body.Size)},
			[]string{"age", itoa(s.Body.Age)},
			[]string{"toughness", itoa(d.Toughness)},
			[]string{"endurance", itoa(d.Endurance)},
			[]string{"speed", itoa(d.Speed)},
			[]string{"senses", itoa(d.Senses)},
			[]string{"beauty", itoa(d.Beauty)},
			[]string{"dangerousness", itoa(d.Dangerousness)},
			[]string{"dignity", itoa(d.Dignity)},
			[]string{"fight number", itoa(d.FightNumber)},
			[]string{"attack", itoa(d.Attack)},
			[]string{"shooting", itoa(d.Shooting)},
			[]string{"defense", itoa(d.DefenseNumber)},
			[]string{"defense vs shooting", itoa(d.DefenseAgainstShooting)},
			[]string{"wound boundary", itoa(d.WoundBoundary)},
			[]string{"fatigue boundary", itoa(d.FatigueBoundary)},
		)

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(head),
		props.String(),
		derived.String(),
	))
	return err
}

func itoa(v int) string { return strconv.Itoa(v) }
