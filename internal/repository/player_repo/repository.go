package player_repo

import (
	"context"
	"errors"

	"kiosk_backend/internal/model"
	"kiosk_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "players"
	colID        = "id"
	colName      = "name"
	colEmail     = "email"
	colPhone     = "phone"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc: dbc,
	}
}

// conn возвращает транзакцию из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
}

// CreatePlayer - создает нового игрока в БД.
// Возвращает ID созданного игрока
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colEmail, colPhone).
		Values(player.Name, player.Email, player.Phone).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return 0, err
	}

	return player.ID, nil
}

// GetPlayerByID - возвращает игрока по его ID.
// Возвращает nil без ошибки, если записи нет
func (r *repo) GetPlayerByID(ctx context.Context, id int) (*model.Player, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colEmail, colPhone, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var player model.Player
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&player.ID, &player.Name, &player.Email, &player.Phone, &player.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &player, nil
}
