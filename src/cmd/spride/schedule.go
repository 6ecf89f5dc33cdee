package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spride/spride-web/src/internal/config"
	"github.com/spride/spride-web/src/internal/locale"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/schedule"
)

func scheduleCmd(configPath *string) *cobra.Command {
	var tab, route, lang, at string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the upcoming shuttle departures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dir, ok := model.ParseDirection(tab)
			if !ok {
				return fmt.Errorf("unknown tab %q", tab)
			}
			var rt model.Route
			if route != "" {
				if rt, ok = model.ParseRoute(route); !ok {
					return fmt.Errorf("unknown route %q", route)
				}
			}
			l, ok := locale.Parse(lang)
			if !ok {
				return fmt.Errorf("unknown language %q", lang)
			}
			now, err := clockTime(at, time.Now().In(cfg.Location()))
			if err != nil {
				return err
			}
			return printSchedule(cmd.OutOrStdout(), schedule.Timetable(), dir, rt, now, l)
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(model.DirectionToSchool), "TO_SCHOOL or FROM_SCHOOL")
	cmd.Flags().StringVar(&route, "route", "", "BAEKSEOK, SAMSONG or SAMSONG_WITH_WONHEUNG (empty for all)")
	cmd.Flags().StringVar(&lang, "lang", string(locale.Fallback), "ko or en")
	cmd.Flags().StringVar(&at, "at", "", "Pretend the current time is HH:MM")
	return cmd
}

// clockTime replaces the time of day of base with at ("HH:MM").
func clockTime(at string, base time.Time) (time.Time, error) {
	if at == "" {
		return base, nil
	}
	m, err := schedule.ParseMinutes(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	y, mo, d := base.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, base.Location()), nil
}

func printSchedule(w io.Writer, trips []model.Trip, tab model.Direction, route model.Route, now time.Time, lang locale.Lang) error {
	snap := schedule.Build(trips, tab, route, now)
	if snap.Empty() {
		_, err := fmt.Fprintln(w, locale.T(lang, "noShuttleInfo"))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	tr := locale.Bundle(lang)
	for _, e := range snap.Entries {
		countdown := ""
		if e.HasCountdown {
			countdown = e.Countdown.Label(tr)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Trip.ID, e.Trip.DepartureTime, e.Trip.Route, countdown)
	}
	return tw.Flush()
}
