package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/matching"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/domain/searchzone"
	"pet-finder/internal/seed"
)

func rankCommand(opts *options) *cobra.Command {
	var (
		lostID   string
		sizeRule string
		weights  string
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the demo sightings for a demo lost pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return err
			}
			rule, err := scoring.ParseSizeRule(sizeRule)
			if err != nil {
				return err
			}
			w, err := scoring.ParseWeights(weights)
			if err != nil {
				return err
			}
			lost, ok := findLost(lostID)
			if !ok {
				return fmt.Errorf("unknown lost pet %q", lostID)
			}

			cfg := scoring.DefaultConfig()
			cfg.SizeRule = rule
			cfg.Weights = w
			ranked := matching.NewEngine(cfg, now).RankMatches(lost, seed.Sightings())
			return printJSON(cmd.OutOrStdout(), ranked)
		},
	}
	cmd.Flags().StringVar(&lostID, "lost", "LP002", "demo lost pet id (LP001..LP008)")
	cmd.Flags().StringVar(&sizeRule, "size-rule", "strict", "size comparison: strict|tiered")
	cmd.Flags().StringVar(&weights, "weights", scoring.WeightSetDefault, "weight set: default|attribute-heavy")
	return cmd
}

func zoneCommand(opts *options) *cobra.Command {
	var (
		lastSeen     string
		gps          bool
		specialNeeds bool
	)
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Compute the recommended search radius",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return err
			}
			if lastSeen == "" {
				return fmt.Errorf("--last-seen is required")
			}
			zone := searchzone.NewEngine(now).Compute(lastSeen, gps, specialNeeds)
			return printJSON(cmd.OutOrStdout(), zone)
		},
	}
	cmd.Flags().StringVar(&lastSeen, "last-seen", "", `last seen time "YYYY-MM-DDTHH:MM"`)
	cmd.Flags().BoolVar(&gps, "gps", false, "pet wears a GPS tracker")
	cmd.Flags().BoolVar(&specialNeeds, "special-needs", false, "pet has special needs")
	return cmd
}

type riskOutput struct {
	Location     geo.Location `json:"location"`
	Level        risk.Level   `json:"level"`
	RecentNearby int          `json:"recent_nearby"`
}

func riskCommand(opts *options) *cobra.Command {
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Classify the area risk against the demo sightings",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return err
			}
			loc := geo.Location{Lat: lat, Lng: lng}
			eng := risk.NewEngine(now)
			count := eng.CountRecentNearby(loc, seed.Sightings())
			return printJSON(cmd.OutOrStdout(), riskOutput{
				Location:     loc,
				Level:        risk.Classify(count),
				RecentNearby: count,
			})
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 13.7563, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 100.5018, "longitude")
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the demo data set as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"lost_pets": seed.LostPets(),
				"sightings": seed.Sightings(),
			})
		},
	}
}

func findLost(id string) (reports.LostPet, bool) {
	for _, p := range seed.LostPets() {
		if p.ID == id {
			return p, true
		}
	}
	return reports.LostPet{}, false
}
