package spin_repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"kiosk_backend/internal/model"
	"kiosk_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table              = "spins"
	colID              = "id"
	colPlayerID        = "player_id"
	colZillowValue     = "zillow_value"
	colRealtorValue    = "realtor_value"
	colHomesValue      = "homes_value"
	colGoogleValue     = "google_value"
	colSmartSignValue  = "smart_sign_value"
	colBananaCount     = "banana_count"
	colBaseScore       = "base_score"
	colBonusMultiplier = "bonus_multiplier"
	colTotalScore      = "total_score"
	colCreatedAt       = "created_at"
)

// allColumns - полный список колонок спина в порядке сканирования
var allColumns = []string{
	colID, colPlayerID,
	colZillowValue, colRealtorValue, colHomesValue, colGoogleValue, colSmartSignValue,
	colBananaCount, colBaseScore, colBonusMultiplier, colTotalScore, colCreatedAt,
}

type repo struct {
	dbc *pgxpool.Pool
}

func NewSpinRepository(dbc *pgxpool.Pool) repository.SpinRepository {
	return &repo{
		dbc: dbc,
	}
}

// conn возвращает транзакцию из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
}

func scanSpin(row pgx.Row) (*model.Spin, error) {
	var spin model.Spin
	err := row.Scan(
		&spin.ID, &spin.PlayerID,
		&spin.Reels.Zillow, &spin.Reels.Realtor, &spin.Reels.Homes,
		&spin.Reels.Google, &spin.Reels.SmartSign,
		&spin.BananaCount, &spin.BaseScore, &spin.BonusMultiplier,
		&spin.TotalScore, &spin.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &spin, nil
}

// CreateSpin - сохраняет спин со всеми производными полями.
// Возвращает ID созданного спина
func (r *repo) CreateSpin(ctx context.Context, spin *model.Spin) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(
			colPlayerID,
			colZillowValue, colRealtorValue, colHomesValue, colGoogleValue, colSmartSignValue,
			colBananaCount, colBaseScore, colBonusMultiplier, colTotalScore,
		).
		Values(
			spin.PlayerID,
			spin.Reels.Zillow, spin.Reels.Realtor, spin.Reels.Homes,
			spin.Reels.Google, spin.Reels.SmartSign,
			spin.BananaCount, spin.BaseScore, spin.BonusMultiplier, spin.TotalScore,
		).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&spin.ID, &spin.CreatedAt)
	if err != nil {
		return 0, err
	}

	return spin.ID, nil
}

// GetSpinByID - возвращает спин по его ID.
// Возвращает nil без ошибки, если записи нет
func (r *repo) GetSpinByID(ctx context.Context, id int) (*model.Spin, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	spin, err := scanSpin(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return spin, nil
}

// UpdateBonusMultiplier - записывает множитель бонуса и пересчитывает total_score
// одним UPDATE'ом, чтобы инвариант total_score = floor(base_score * multiplier)
// не нарушался даже при конкурентных вызовах.
// Возвращает nil без ошибки, если записи нет
func (r *repo) UpdateBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBonusMultiplier, multiplier).
		Set(colTotalScore, sq.Expr("FLOOR("+colBaseScore+" * ?)::int", multiplier)).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + strings.Join(allColumns, ", ")).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	spin, err := scanSpin(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return spin, nil
}

// DailyScores - агрегат по игрокам за окно [from, to).
// best_spin_id - максимальный id спина игрока за окно (артефакт исходной
// агрегации, сознательно сохранен: это не спин с наибольшим счетом)
func (r *repo) DailyScores(ctx context.Context, from, to time.Time) ([]model.PlayerDailyScore, error) {
	// Формируем запрос
	query := sq.Select(
		"s."+colPlayerID,
		"p.name",
		"SUM(s."+colTotalScore+") AS total_score",
		"COUNT(s."+colID+") AS spin_count",
		"MAX(s."+colID+") AS best_spin_id",
	).
		From(table + " s").
		Join("players p ON p.id = s." + colPlayerID).
		Where(sq.GtOrEq{"s." + colCreatedAt: from}).
		Where(sq.Lt{"s." + colCreatedAt: to}).
		GroupBy("s."+colPlayerID, "p.name").
		OrderBy("total_score DESC", "s."+colPlayerID+" ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []model.PlayerDailyScore
	for rows.Next() {
		var score model.PlayerDailyScore
		var totalScore int64
		err = rows.Scan(&score.PlayerID, &score.Name, &totalScore, &score.SpinCount, &score.BestSpinID)
		if err != nil {
			return nil, err
		}
		score.TotalScore = int(totalScore)
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}
