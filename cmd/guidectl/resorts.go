package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"guide-backend/internal/resorts"
)

func newResortsCmd(opts *options) *cobra.Command {
	var (
		mode        string
		maxMinutes  int
		buckets     []string
		showSources bool
	)
	cmd := &cobra.Command{
		Use:   "resorts",
		Short: "List ski resorts reachable within a time limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			q, err := resorts.ParseQuery(mode, &maxMinutes, buckets)
			if err != nil {
				return err
			}
			svc := resorts.NewService(b, cfg.Resorts)
			res, err := svc.Search(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("❄️ 스키장 거리·난이도 가이드"))
			fmt.Fprintln(out, noteStyle.Render("출발지: "+svc.DefaultOrigin))
			if len(res.Matches) == 0 {
				fmt.Fprintln(out, warningStyle.Render("선택한 이동수단/시간 기준으로는 해당 범위에 들어오는 스키장이 없습니다. 최대 시간을 늘리거나 이동수단을 바꿔보세요."))
				return nil
			}
			fmt.Fprintln(out, sectionStyle.Render(fmt.Sprintf("%s 기준 %d분 이내: %d곳", res.ModeLabel, res.MaxMinutes, len(res.Matches))))
			for _, m := range res.Matches {
				lines := []string{
					fmt.Sprintf("%s %s  ⏱️ %s", m.Name, m.Icon, m.MinutesText),
					badges(append([]string{m.Region}, m.Highlights...), "") + " " + badgeStyle.Render("["+m.BucketLabel+"]"),
					"🗺️ " + m.SearchURL,
				}
				if m.Note != "" {
					lines = append(lines, "📝 "+m.Note)
				}
				if showSources && m.SourceHint != "" {
					lines = append(lines, noteStyle.Render("🔎 근거 힌트: "+m.SourceHint))
				}
				fmt.Fprintln(out, card(lines...))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(resorts.ModeCar), "travel mode: car, public or ktx (Korean labels accepted)")
	cmd.Flags().IntVar(&maxMinutes, "max", resorts.DefaultMaxMinutes, "maximum travel time in minutes")
	cmd.Flags().StringSliceVar(&buckets, "bucket", nil, "difficulty bucket to keep, repeatable")
	cmd.Flags().BoolVar(&showSources, "sources", false, "show the source hint for each resort")
	return cmd
}
