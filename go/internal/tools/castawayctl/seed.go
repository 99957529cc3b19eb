package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout read by `castawayctl seed`.
type seedFile struct {
	Rules   []ruleSpec   `yaml:"rules"`
	Seasons []seasonSpec `yaml:"seasons"`
}

type ruleSpec struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Points      int    `yaml:"points"`
	Category    string `yaml:"category"`
}

type seasonSpec struct {
	Name      string         `yaml:"name"`
	Castaways []castawaySpec `yaml:"castaways"`
	Episodes  []episodeSpec  `yaml:"episodes"`
}

type castawaySpec struct {
	Name           string `yaml:"name"`
	Tribe          string `yaml:"tribe"`
	EliminatedWeek *int   `yaml:"eliminated_week"`
}

type episodeSpec struct {
	Week    int        `yaml:"week"`
	Title   string     `yaml:"title"`
	AirDate *time.Time `yaml:"air_date"`
}

type seedSummary struct {
	Rules     int `json:"rules"`
	Seasons   int `json:"seasons"`
	Castaways int `json:"castaways"`
	Episodes  int `json:"episodes"`
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := sf.validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

func (sf *seedFile) validate() error {
	for i, s := range sf.Seasons {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("seasons[%d]: name is required", i)
		}
		weeks := make(map[int]bool, len(s.Episodes))
		for _, e := range s.Episodes {
			if e.Week < 1 {
				return fmt.Errorf("season %q: episode week must be at least 1, got %d", s.Name, e.Week)
			}
			if weeks[e.Week] {
				return fmt.Errorf("season %q: week %d listed twice", s.Name, e.Week)
			}
			weeks[e.Week] = true
		}
		for _, c := range s.Castaways {
			if strings.TrimSpace(c.Name) == "" {
				return fmt.Errorf("season %q: castaway name is required", s.Name)
			}
		}
	}
	return nil
}

func (sf *seedFile) scoringRules() []models.ScoringRule {
	out := make([]models.ScoringRule, len(sf.Rules))
	for i, r := range sf.Rules {
		out[i] = models.ScoringRule{
			Code:        r.Code,
			Description: r.Description,
			Points:      r.Points,
			Category:    models.RuleCategory(strings.ToUpper(r.Category)),
		}
	}
	return out
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load scoring rules, seasons, castaways and episodes from YAML",
		Long: `Load a seed file. Every entry is an upsert keyed by its natural name
(rule code, season name, castaway name within a season, episode week within a season),
so the same file can be applied repeatedly.

Example:
  castawayctl seed --file config/seed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := loadSeedFile(path)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			summary, err := applySeed(ctx, rt, sf)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, summary, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rules, %d seasons, %d castaways, %d episodes\n",
					summary.Rules, summary.Seasons, summary.Castaways, summary.Episodes)
			})
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "config/seed.yaml", "seed file path")
	return cmd
}

func applySeed(ctx context.Context, rt *runtime, sf *seedFile) (*seedSummary, error) {
	summary := &seedSummary{}

	if len(sf.Rules) > 0 {
		rules, err := rt.scoring.ImportRules(ctx, sf.scoringRules())
		if err != nil {
			return nil, err
		}
		summary.Rules = len(rules)
	}

	for _, s := range sf.Seasons {
		season, err := rt.queries.UpsertSeason(ctx, strings.TrimSpace(s.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to upsert season %q: %w", s.Name, err)
		}
		summary.Seasons++

		for _, c := range s.Castaways {
			var tribe *string
			if t := strings.TrimSpace(c.Tribe); t != "" {
				tribe = &t
			}
			row, err := rt.queries.UpsertCastaway(ctx, db.UpsertCastawayParams{
				SeasonID: season.ID,
				Name:     strings.TrimSpace(c.Name),
				Tribe:    sqlutil.ToPgText(tribe),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to upsert castaway %q: %w", c.Name, err)
			}
			if c.EliminatedWeek != nil {
				if _, err := rt.castaways.RecordElimination(ctx, row.ID, c.EliminatedWeek); err != nil {
					return nil, err
				}
			}
			summary.Castaways++
		}

		for _, e := range s.Episodes {
			if _, err := rt.queries.UpsertEpisode(ctx, db.UpsertEpisodeParams{
				SeasonID: season.ID,
				Week:     int32(e.Week),
				Title:    e.Title,
				AirDate:  sqlutil.ToPgTimestamptz(e.AirDate),
			}); err != nil {
				return nil, fmt.Errorf("failed to upsert episode week %d: %w", e.Week, err)
			}
			summary.Episodes++
		}

		log.Info().
			Str("season", s.Name).
			Str("season_id", season.ID.String()).
			Int("castaways", len(s.Castaways)).
			Int("episodes", len(s.Episodes)).
			Msg("season seeded")
	}
	return summary, nil
}
