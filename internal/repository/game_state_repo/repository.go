package game_state_repo

import (
	"context"
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
	table                = "game_states"
	colID                = "id"
	colState             = "state"
	colCurrentPlayerID   = "current_player_id"
	colCurrentPlayerName = "current_player_name"
	colCurrentSpinID     = "current_spin_id"
	colUpdatedAt         = "updated_at"
)

var allColumns = []string{
	colID, colState, colCurrentPlayerID, colCurrentPlayerName, colCurrentSpinID, colUpdatedAt,
}

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameStateRepository(dbc *pgxpool.Pool) repository.GameStateRepository {
	return &repo{
		dbc: dbc,
	}
}

// conn возвращает транзакцию из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
}

func scanState(row pgx.Row) (*model.GameState, error) {
	var state model.GameState
	err := row.Scan(
		&state.ID, &state.State,
		&state.CurrentPlayerID, &state.CurrentPlayerName, &state.CurrentSpinID,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetCurrent - возвращает singleton-запись состояния игры.
// Если записи еще нет, создает ее в фазе idle (ON CONFLICT DO NOTHING)
func (r *repo) GetCurrent(ctx context.Context) (*model.GameState, error) {
	// Формируем запрос на вставку, если записи не существует
	insertQuery := sq.Insert(table).
		Columns(colID, colState, colUpdatedAt).
		Values(model.GameStateSingletonID, model.StateIdle, time.Now()).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insertQuery.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	// Формируем запрос на чтение
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: model.GameStateSingletonID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanState(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
}

// UpdateState - перезаписывает singleton-запись целиком одним upsert'ом
// по фиксированному id, поэтому запись корректна и при нескольких
// экземплярах сервера
func (r *repo) UpdateState(ctx context.Context, state *model.GameState) (*model.GameState, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colState, colCurrentPlayerID, colCurrentPlayerName, colCurrentSpinID, colUpdatedAt).
		Values(
			model.GameStateSingletonID, state.State,
			state.CurrentPlayerID, state.CurrentPlayerName, state.CurrentSpinID,
			time.Now(),
		).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colState + " = EXCLUDED." + colState + ", " +
			colCurrentPlayerID + " = EXCLUDED." + colCurrentPlayerID + ", " +
			colCurrentPlayerName + " = EXCLUDED." + colCurrentPlayerName + ", " +
			colCurrentSpinID + " = EXCLUDED." + colCurrentSpinID + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		Suffix("RETURNING " + strings.Join(allColumns, ", ")).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanState(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
}
