package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"guide-backend/internal/shoulder"
)

func newShoulderCmd(opts *options) *cobra.Command {
	var (
		symptom string
		list    bool
		flags   shoulder.Flags
	)
	cmd := &cobra.Command{
		Use:   "shoulder",
		Short: "Show exams and exercises for a shoulder symptom",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			svc := shoulder.NewService(b)
			out := cmd.OutOrStdout()

			if list || symptom == "" {
				fmt.Fprintln(out, sectionStyle.Render("증상 목록"))
				for i, s := range svc.Symptoms() {
					fmt.Fprintf(out, "%d. %s\n", i+1, s)
				}
				return nil
			}

			res, err := svc.Lookup(cmd.Context(), symptom, flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, titleStyle.Render("💪 어깨 통증 검사·운동 가이드"))
			for _, a := range res.Advisories {
				fmt.Fprintln(out, warningStyle.Render("⚠️ "+a.Text))
			}
			fmt.Fprintln(out, badges(res.Tags, "🔹 "))
			fmt.Fprintln(out, sectionStyle.Render("이학적 검사"))
			for _, t := range res.Tests {
				lines := []string{t.Name, "• 대상: " + t.Target, "• 방법: " + t.Procedure, "• 양성 소견: " + t.Positive}
				if t.Caution != "" {
					lines = append(lines, "• 주의: "+t.Caution)
				}
				fmt.Fprintln(out, card(lines...))
			}
			fmt.Fprintln(out, sectionStyle.Render("집에서 하는 운동"))
			for _, e := range res.Exercises {
				lines := []string{e.Name, "• 목표: " + e.Goal}
				for i, step := range e.Steps {
					lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
				}
				lines = append(lines, "• 양: "+e.Dosage)
				if e.Caution != "" {
					lines = append(lines, "• 주의: "+e.Caution)
				}
				if e.Diagram != "" {
					lines = append(lines, strings.TrimRight(e.Diagram, "\n"))
				}
				fmt.Fprintln(out, card(lines...))
			}
			fmt.Fprintln(out, noteStyle.Render(shoulder.Disclaimer))
			return nil
		},
	}
	cmd.Flags().StringVar(&symptom, "symptom", "", "symptom description exactly as listed by --list")
	cmd.Flags().BoolVar(&list, "list", false, "list the known symptoms")
	cmd.Flags().BoolVar(&flags.Trauma, "trauma", false, "pain started after a fall or impact")
	cmd.Flags().BoolVar(&flags.Fever, "fever", false, "fever, redness or warmth")
	cmd.Flags().BoolVar(&flags.Neuro, "neuro", false, "numbness, tingling or weakness in the arm")
	return cmd
}
