package scoring

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// Querier defines the reads and single-statement writes the repository makes outside a
// transaction
type Querier interface {
	GetCastaway(ctx context.Context, id uuid.UUID) (db.Castaway, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (db.Episode, error)
	GetEpisodeTotal(ctx context.Context, arg db.GetEpisodeTotalParams) (int32, error)
	ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]db.EpisodeScore, error)
	ListScoringRules(ctx context.Context) ([]db.ScoringRule, error)
	UpsertScoringRule(ctx context.Context, arg db.UpsertScoringRuleParams) (db.ScoringRule, error)
}

// Repository implements the scoring ledger on the store
type Repository struct {
	queries Querier
	pool    sqlutil.TxBeginner
}

// NewRepository creates a new scoring repository
func NewRepository(querier Querier, pool sqlutil.TxBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// RecordScore upserts the (episode, castaway, rule) row with points = quantity x rule points.
// Quantity 0 deletes the row. The episode row is locked so a concurrent finalize either sees
// the write or the write sees the finalized episode.
func (r *Repository) RecordScore(ctx context.Context, p recordParams) (*RecordResult, error) {
	result := &RecordResult{}
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		ep, err := q.GetEpisodeForUpdate(ctx, p.EpisodeID)
		if err != nil {
			return sqlutil.Classify("lock episode", "episode", p.EpisodeID, err)
		}
		if ep.FinalizedAt.Valid {
			return apperrors.Conflict("episode %s (week %d) is finalized", ep.ID, ep.Week)
		}
		result.SeasonID = ep.SeasonID

		c, err := q.GetCastaway(ctx, p.CastawayID)
		if err != nil {
			return sqlutil.Classify("get castaway", "castaway", p.CastawayID, err)
		}
		if c.SeasonID != ep.SeasonID {
			return apperrors.Validation("castaway_id", "castaway %s does not play the episode's season", c.ID)
		}

		rule, err := q.GetScoringRule(ctx, p.RuleID)
		if err != nil {
			return sqlutil.Classify("get scoring rule", "scoring rule", p.RuleID, err)
		}

		points, err := scorePoints(p.Quantity, rule.Points)
		if err != nil {
			return err
		}
		if p.Quantity == 0 {
			if _, err := q.DeleteEpisodeScore(ctx, db.DeleteEpisodeScoreParams{
				EpisodeID:  p.EpisodeID,
				CastawayID: p.CastawayID,
				RuleID:     p.RuleID,
			}); err != nil {
				return sqlutil.Classify("delete episode score", "episode score", p.EpisodeID, err)
			}
			result.Deleted = true
		} else {
			row, err := q.UpsertEpisodeScore(ctx, db.UpsertEpisodeScoreParams{
				EpisodeID:  p.EpisodeID,
				CastawayID: p.CastawayID,
				RuleID:     p.RuleID,
				Quantity:   int32(p.Quantity),
				Points:     points,
				UpdatedAt:  p.At,
			})
			if err != nil {
				return sqlutil.Classify("upsert episode score", "episode score", p.EpisodeID, err)
			}
			result.Score = dbScoreToModel(row)
		}

		return outbox.Write(ctx, q, ep.SeasonID, events.ScoreRecorded, events.ScoreRecordedPayload{
			SeasonID:   ep.SeasonID,
			EpisodeID:  p.EpisodeID,
			CastawayID: p.CastawayID,
			RuleID:     p.RuleID,
			Quantity:   p.Quantity,
			Points:     int(points),
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FinalizeEpisode locks an episode against further scoring writes
func (r *Repository) FinalizeEpisode(ctx context.Context, episodeID uuid.UUID, at time.Time) (*models.Episode, error) {
	var finalized db.Episode
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		ep, err := q.GetEpisodeForUpdate(ctx, episodeID)
		if err != nil {
			return sqlutil.Classify("lock episode", "episode", episodeID, err)
		}
		if ep.FinalizedAt.Valid {
			return apperrors.Conflict("episode %s was already finalized at %s", ep.ID, ep.FinalizedAt.Time.Format(time.RFC3339))
		}

		finalized, err = q.FinalizeEpisode(ctx, db.FinalizeEpisodeParams{
			ID:          episodeID,
			FinalizedAt: sqlutil.ToPgTimestamptz(&at),
		})
		if err != nil {
			return sqlutil.Classify("finalize episode", "episode", episodeID, err)
		}

		return outbox.Write(ctx, q, ep.SeasonID, events.EpisodeFinalized, events.EpisodeFinalizedPayload{
			SeasonID:    ep.SeasonID,
			EpisodeID:   ep.ID,
			Week:        int(ep.Week),
			FinalizedAt: at,
		})
	})
	if err != nil {
		return nil, err
	}
	return EpisodeFromDB(finalized), nil
}

// GetEpisode retrieves an episode by ID
func (r *Repository) GetEpisode(ctx context.Context, id uuid.UUID) (*models.Episode, error) {
	ep, err := r.queries.GetEpisode(ctx, id)
	if err != nil {
		return nil, sqlutil.Classify("get episode", "episode", id, err)
	}
	return EpisodeFromDB(ep), nil
}

// CastawayExists fails with NotFound when the castaway does not exist
func (r *Repository) CastawayExists(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.GetCastaway(ctx, id); err != nil {
		return sqlutil.Classify("get castaway", "castaway", id, err)
	}
	return nil
}

// GetEpisodeTotal sums a castaway's points over every rule in one episode
func (r *Repository) GetEpisodeTotal(ctx context.Context, episodeID, castawayID uuid.UUID) (int, error) {
	total, err := r.queries.GetEpisodeTotal(ctx, db.GetEpisodeTotalParams{EpisodeID: episodeID, CastawayID: castawayID})
	if err != nil {
		return 0, sqlutil.Classify("get episode total", "episode", episodeID, err)
	}
	return int(total), nil
}

// ListEpisodeScores retrieves the ledger rows of an episode
func (r *Repository) ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]models.EpisodeScore, error) {
	rows, err := r.queries.ListEpisodeScores(ctx, episodeID)
	if err != nil {
		return nil, sqlutil.Classify("list episode scores", "episode", episodeID, err)
	}

	scores := make([]models.EpisodeScore, len(rows))
	for i, row := range rows {
		scores[i] = *dbScoreToModel(row)
	}
	return scores, nil
}

// ListRules retrieves the scoring rule catalog
func (r *Repository) ListRules(ctx context.Context) ([]models.ScoringRule, error) {
	rows, err := r.queries.ListScoringRules(ctx)
	if err != nil {
		return nil, sqlutil.Classify("list scoring rules", "scoring rule", "*", err)
	}

	rules := make([]models.ScoringRule, len(rows))
	for i, row := range rows {
		rules[i] = *dbRuleToModel(row)
	}
	return rules, nil
}

// UpsertRule creates a rule or updates the one with the same code
func (r *Repository) UpsertRule(ctx context.Context, rule models.ScoringRule) (*models.ScoringRule, error) {
	row, err := r.queries.UpsertScoringRule(ctx, db.UpsertScoringRuleParams{
		Code:        rule.Code,
		Description: rule.Description,
		Points:      int32(rule.Points),
		Category:    string(rule.Category),
		IsNegative:  rule.IsNegative,
	})
	if err != nil {
		return nil, sqlutil.Classify("upsert scoring rule", "scoring rule", rule.Code, err)
	}
	return dbRuleToModel(row), nil
}

// EpisodeFromDB converts a database episode to the domain model
func EpisodeFromDB(e db.Episode) *models.Episode {
	return &models.Episode{
		ID:          e.ID,
		SeasonID:    e.SeasonID,
		Week:        int(e.Week),
		Title:       e.Title,
		AirDate:     sqlutil.FromPgTimestamptz(e.AirDate),
		FinalizedAt: sqlutil.FromPgTimestamptz(e.FinalizedAt),
	}
}

func dbScoreToModel(s db.EpisodeScore) *models.EpisodeScore {
	return &models.EpisodeScore{
		EpisodeID:  s.EpisodeID,
		CastawayID: s.CastawayID,
		RuleID:     s.RuleID,
		Quantity:   int(s.Quantity),
		Points:     int(s.Points),
		UpdatedAt:  s.UpdatedAt,
	}
}

func dbRuleToModel(r db.ScoringRule) *models.ScoringRule {
	return &models.ScoringRule{
		ID:          r.ID,
		Code:        r.Code,
		Description: r.Description,
		Points:      int(r.Points),
		Category:    models.RuleCategory(r.Category),
		IsNegative:  r.IsNegative,
	}
}

// scorePoints is quantity x rulePoints, rejected when either the quantity or the product does
// not fit the ledger's integer columns.
func scorePoints(quantity int, rulePoints int32) (int32, error) {
	if quantity < 0 || quantity > math.MaxInt32 {
		return 0, apperrors.Validation("quantity", "must be between 0 and %d, got %d", math.MaxInt32, quantity)
	}
	points := int64(quantity) * int64(rulePoints)
	if points < math.MinInt32 || points > math.MaxInt32 {
		return 0, apperrors.Validation("quantity", "%d x %d points overflows the score ledger", quantity, rulePoints)
	}
	return int32(points), nil
}
