package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"guide-backend/internal/careers"
)

func newCareersCmd(opts *options) *cobra.Command {
	var (
		mbti      string
		interests []string
		count     int
	)
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Recommend careers for a personality type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			svc := careers.NewService(b, cfg.Careers)
			res, err := svc.Recommend(cmd.Context(), mbti, interests, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("MBTI 진로 추천 🧭"))
			fmt.Fprintln(out, sectionStyle.Render(res.Pack.Code+" — "+res.Pack.Summary))
			fmt.Fprintln(out, badges(res.Pack.Strengths, "🔹 "))
			if len(res.Interests) > 0 {
				fmt.Fprintln(out, noteStyle.Render("관심 분야: "+strings.Join(res.Interests, ", ")))
			}
			fmt.Fprintln(out, sectionStyle.Render("추천 직업"))
			for _, c := range res.Cards {
				fmt.Fprintln(out, card(
					fmt.Sprintf("%d. %s (점수 %d)", c.Rank, c.Name, c.Score),
					"• 환경: "+c.Environment,
					"• 팁: "+c.StudyTip,
				))
			}
			if len(res.Pack.FamousPeople) > 0 {
				fmt.Fprintln(out, sectionStyle.Render("대표적으로 언급되는 유명인"))
				fmt.Fprintln(out, badges(res.Pack.FamousPeople, "⭐ "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mbti, "mbti", "INTJ", "four-letter personality type")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "interest label, repeatable (e.g. IT/개발)")
	cmd.Flags().IntVar(&count, "count", careers.DefaultViewSize, "number of careers to show")
	return cmd
}
