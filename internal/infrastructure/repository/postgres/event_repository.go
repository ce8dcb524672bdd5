package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/event"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type eventTableModel struct {
	ID         int64         `db:"id"`
	Name       string        `db:"name"`
	Season     int64         `db:"season"`
	Week       int64         `db:"week"`
	SeasonType int64         `db:"season_type"`
	WeatherID  sql.NullInt64 `db:"weather_id"`
}

type weatherInsertModel struct {
	Display       string `db:"display_value"`
	WindSpeed     int64  `db:"wind_speed"`
	Temperature   int64  `db:"temperature"`
	Gust          int64  `db:"gust"`
	Precipitation int64  `db:"precipitation"`
}

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build select event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("select event %d: %w", id, err)
	}
	return event.Event{
		ID:         row.ID,
		Name:       row.Name,
		Season:     row.Season,
		Week:       row.Week,
		SeasonType: row.SeasonType,
		WeatherID:  nullInt64ToPtr(row.WeatherID),
	}, true, nil
}

func (r *EventRepository) Insert(ctx context.Context, e event.Event) error {
	model := eventTableModel{
		ID:         e.ID,
		Name:       e.Name,
		Season:     e.Season,
		Week:       e.Week,
		SeasonType: e.SeasonType,
		WeatherID:  ptrToNullInt64(e.WeatherID),
	}
	query, args, err := qb.InsertModel("events", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event %d: %w", e.ID, err)
	}
	return nil
}

func (r *EventRepository) InsertWeather(ctx context.Context, w event.Weather) (int64, error) {
	model := weatherInsertModel{
		Display:       w.Display,
		WindSpeed:     w.WindSpeed,
		Temperature:   w.Temperature,
		Gust:          w.Gust,
		Precipitation: w.Precipitation,
	}
	query, args, err := qb.InsertModel("weather", model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert weather query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert weather: %w", err)
	}
	return id, nil
}
