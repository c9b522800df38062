package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrissnell/solargeometry/pkg/solar"
)

const clock = "2006-01-02 15:04:05 -07:00"

func snapshotCmd(opts *options) *cobra.Command {
	var localTime string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compute every solar quantity for one local time",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			s, err := engine.ComputeAt(localTime)
			if err != nil {
				return err
			}

			if !opts.textOutput() {
				return opts.write(s, []solar.SnapshotRow{s.Row()})
			}

			w := tabwriter.NewWriter(opts.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Location:\t%s\n", s.Location)
			fmt.Fprintf(w, "Local standard time:\t%s\n", s.LocalTime.Format(clock))
			fmt.Fprintf(w, "Day number:\t%d\n", s.DayNumber)
			fmt.Fprintf(w, "B:\t%.4f°\n", s.B)
			fmt.Fprintf(w, "G_on:\t%.2f W/m²\n", s.GOn)
			fmt.Fprintf(w, "Equation of time:\t%.4f min\n", s.E)
			fmt.Fprintf(w, "Solar time:\t%s\n", s.SolarTime.Format(clock))
			fmt.Fprintf(w, "Declination:\t%.4f°\n", s.Declination)
			fmt.Fprintf(w, "Hour angle:\t%.4f°\n", s.HourAngle)
			fmt.Fprintf(w, "Zenith:\t%.4f°\n", s.Zenith)
			fmt.Fprintf(w, "Altitude:\t%.4f°\n", s.Altitude)

			if az, err := s.Azimuth(); err == nil {
				fmt.Fprintf(w, "Azimuth:\t%.4f°\n", az)
			} else {
				fmt.Fprintf(w, "Azimuth:\tn/a (%v)\n", err)
			}
			if am, err := engine.AirMass(s.Zenith); err == nil {
				fmt.Fprintf(w, "Air mass:\t%.4f\n", am)
			} else {
				fmt.Fprintf(w, "Air mass:\tn/a (%v)\n", err)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&localTime, "time", "t", "", "Local standard time with UTC offset, e.g. \"May 1, 2019 12:00 PM -08:00\" (configured time when empty)")
	return cmd
}

func noonCmd(opts *options) *cobra.Command {
	var localTime string

	cmd := &cobra.Command{
		Use:   "noon",
		Short: "Show solar noon, sunrise and sunset as local standard times",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			d, err := engine.SunriseSunset(localTime)
			if err != nil {
				return err
			}

			if !opts.textOutput() {
				return opts.write(d, nil)
			}

			w := tabwriter.NewWriter(opts.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Solar noon:\t%s\n", d.SolarNoon.Format(clock))
			switch {
			case d.PolarDay:
				fmt.Fprintln(w, "Sunrise/sunset:\tnone, the sun stays up all day")
			case d.PolarNight:
				fmt.Fprintln(w, "Sunrise/sunset:\tnone, the sun stays down all day")
			default:
				fmt.Fprintf(w, "Sunrise:\t%s\n", d.Sunrise.Format(clock))
				fmt.Fprintf(w, "Sunset:\t%s\n", d.Sunset.Format(clock))
			}
			fmt.Fprintf(w, "Day length:\t%s\n", d.Length.Round(time.Second))
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&localTime, "time", "t", "", "Any local standard time on the day, with UTC offset (configured time when empty)")
	return cmd
}

type airMassResult struct {
	Zenith       float64  `json:"zenith_degrees" csv:"zenith_degrees"`
	SiteAltitude *float64 `json:"site_altitude_m,omitempty" csv:"-"`
	AirMass      float64  `json:"air_mass" csv:"air_mass"`
}

func airMassCmd(opts *options) *cobra.Command {
	var (
		zenith       float64
		siteAltitude float64
	)

	cmd := &cobra.Command{
		Use:   "airmass",
		Short: "Compute the relative optical air mass for a zenith angle",
		RunE: func(cmd *cobra.Command, args []string) error {
			var alt *float64
			if cmd.Flags().Changed("site-altitude") {
				alt = &siteAltitude
			} else {
				engine, err := opts.newEngine(cmd)
				if err != nil {
					return err
				}
				alt = engine.SiteAltitude()
			}

			am, err := solar.AirMass(zenith, alt)
			if err != nil {
				var missing *solar.MissingParameterError
				if errors.As(err, &missing) {
					return fmt.Errorf("%w (pass --site-altitude or set site_altitude_m)", err)
				}
				return err
			}

			res := airMassResult{Zenith: zenith, SiteAltitude: alt, AirMass: am}
			if !opts.textOutput() {
				return opts.write(res, []airMassResult{res})
			}
			_, err = fmt.Fprintf(opts.stdout, "%.4f\n", am)
			return err
		},
	}

	cmd.Flags().Float64VarP(&zenith, "zenith", "z", 0, "Zenith angle in degrees")
	cmd.Flags().Float64Var(&siteAltitude, "site-altitude", 0, "Site altitude in meters (configured altitude when unset)")
	_ = cmd.MarkFlagRequired("zenith")
	return cmd
}

func profileCmd(opts *options) *cobra.Command {
	var (
		date string
		step time.Duration
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Sample a whole day and summarize it",
		Long: "Samples a whole day from local midnight and summarizes it.\n\n" +
			"Day numbers stop at 365, so Dec 31 of a leap year cannot be profiled. Jan 1 after a\n" +
			"leap year fails too at longitudes west of the zone's standard meridian, where the\n" +
			"first minutes of the day are still Dec 31 in solar time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			p, err := engine.Profile(date, step)
			if err != nil {
				return err
			}

			if !opts.textOutput() {
				return opts.write(p, p.Rows())
			}

			sum := p.Summary
			w := tabwriter.NewWriter(opts.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Date:\t%s (%d samples every %s)\n", p.Date, len(p.Points), p.Step)
			fmt.Fprintf(w, "Peak altitude:\t%.2f° at %s\n", sum.PeakAltitude, sum.PeakTime.Format("15:04"))
			fmt.Fprintf(w, "Daylight samples:\t%d\n", sum.DaylightSamples)
			if sum.MeanDaylightZenith != nil {
				fmt.Fprintf(w, "Mean daylight zenith:\t%.2f°\n", *sum.MeanDaylightZenith)
			}
			fmt.Fprintf(w, "Extraterrestrial insolation:\t%.0f Wh/m²\n", sum.Insolation)
			if sum.ClearSkyInsolation != nil {
				fmt.Fprintf(w, "Clear-sky insolation:\t%.0f Wh/m²\n", *sum.ClearSkyInsolation)
				if wh, err := engine.ArrayYield(*sum.ClearSkyInsolation); err == nil {
					fmt.Fprintf(w, "Clear-sky array yield:\t%.0f Wh\n", wh)
				}
			}
			if !sum.Daylight.PolarDay && !sum.Daylight.PolarNight {
				fmt.Fprintf(w, "Sunrise / sunset:\t%s / %s\n", sum.Daylight.Sunrise.Format("15:04"), sum.Daylight.Sunset.Format("15:04"))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "Time\tSolar time\tHour angle\tZenith\tAltitude")
			for _, s := range p.Points {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\n",
					s.LocalTime.Format("15:04"), s.SolarTime.Format("15:04"), s.HourAngle, s.Zenith, s.Altitude)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date to profile, e.g. \"2019-05-01\" or \"2019-05-01 -08:00\"; without a UTC offset the configured offset is used (configured date when empty)")
	cmd.Flags().DurationVar(&step, "step", 15*time.Minute, "Sampling step, between 1m and 12h")
	return cmd
}
