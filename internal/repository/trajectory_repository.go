package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/database"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
)

// TrajectoryRepository handles database operations for trajectory points
type TrajectoryRepository struct {
	db *sql.DB
}

// NewTrajectoryRepository creates a new trajectory repository
func NewTrajectoryRepository(db *sql.DB) *TrajectoryRepository {
	return &TrajectoryRepository{db: db}
}

// ReplaceAll atomically replaces the stored trajectory with the given
// points. Each render run persists exactly one trajectory.
func (r *TrajectoryRepository) ReplaceAll(points []models.TrajectoryPoint) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM trajectory_points"); err != nil {
			return fmt.Errorf("failed to clear trajectory points: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO trajectory_points (timestamp_utc, latitude, longitude, accuracy, speed)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			if _, err := stmt.Exec(
				p.Timestamp.UnixMilli(),
				p.Latitude,
				p.Longitude,
				nullableFloat(p.Accuracy),
				nullableFloat(p.Speed),
			); err != nil {
				return fmt.Errorf("failed to insert trajectory point: %w", err)
			}
		}
		return nil
	})
}

// GetPoints retrieves trajectory points with filtering and pagination
func (r *TrajectoryRepository) GetPoints(filter models.PointFilter) ([]models.TrajectoryPoint, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.StartTime > 0 {
		conditions = append(conditions, "timestamp_utc >= ?")
		args = append(args, filter.StartTime*1000)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "timestamp_utc <= ?")
		args = append(args, filter.EndTime*1000)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trajectory_points"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trajectory points: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := `SELECT id, timestamp_utc, latitude, longitude, accuracy, speed
		FROM trajectory_points` + where + ` ORDER BY timestamp_utc LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trajectory points: %w", err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// GetAll retrieves the full stored trajectory ordered by time
func (r *TrajectoryRepository) GetAll() ([]models.TrajectoryPoint, error) {
	rows, err := r.db.Query(`SELECT id, timestamp_utc, latitude, longitude, accuracy, speed
		FROM trajectory_points ORDER BY timestamp_utc`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory points: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

func scanPoints(rows *sql.Rows) ([]models.TrajectoryPoint, error) {
	var points []models.TrajectoryPoint
	for rows.Next() {
		var p models.TrajectoryPoint
		var ts int64
		var accuracy, speed sql.NullFloat64

		if err := rows.Scan(&p.ID, &ts, &p.Latitude, &p.Longitude, &accuracy, &speed); err != nil {
			return nil, fmt.Errorf("failed to scan trajectory point: %w", err)
		}
		p.Timestamp = time.UnixMilli(ts).UTC()
		if accuracy.Valid {
			p.Accuracy = &accuracy.Float64
		}
		if speed.Valid {
			p.Speed = &speed.Float64
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
