package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Rhaast00/vervappweb/internal/domain"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned by point lookups for absent records.
var ErrNotFound = errors.New("record not found")

// AnalysisRecord is a stored website analysis.
type AnalysisRecord struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Data      domain.WebsiteData  `json:"data"`
	CreatedAt time.Time           `json:"createdAt"`
}

// RedesignRecord is a stored redesign linked to its source analysis.
type RedesignRecord struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	AnalysisID  string             `json:"analysisId"`
	DesignStyle domain.DesignStyle `json:"designStyle"`
	HTML        string             `json:"html"`
	CSS         string             `json:"css"`
	Preview     string             `json:"preview"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// RecordRepository persists analyses and redesigns.
type RecordRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRecordRepository(db *sql.DB, logger *zap.Logger) *RecordRepository {
	return &RecordRepository{db: db, logger: logger}
}

// SaveAnalysis inserts one analysis row and returns its id.
func (r *RecordRepository) SaveAnalysis(ctx context.Context, userID string, data *domain.WebsiteData) (string, error) {
	colors, err := json.Marshal(data.Colors)
	if err != nil {
		return "", perrors.NewPersistenceError("encode analysis", err)
	}
	fonts, err := json.Marshal(data.Fonts)
	if err != nil {
		return "", perrors.NewPersistenceError("encode analysis", err)
	}
	layout, err := json.Marshal(data.Layout)
	if err != nil {
		return "", perrors.NewPersistenceError("encode analysis", err)
	}
	elements, err := json.Marshal(data.Elements)
	if err != nil {
		return "", perrors.NewPersistenceError("encode analysis", err)
	}
	images, err := json.Marshal(data.Images)
	if err != nil {
		return "", perrors.NewPersistenceError("encode analysis", err)
	}

	var content []byte
	if data.ContentStructure != nil {
		content, err = json.Marshal(data.ContentStructure)
		if err != nil {
			return "", perrors.NewPersistenceError("encode analysis", err)
		}
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO website_analyses (id, user_id, url, colors, fonts, layout, elements, images, content_structure)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, userID, data.URL, colors, fonts, layout, elements, nullable(images), nullable(content),
	)
	if err != nil {
		return "", perrors.NewPersistenceError("save analysis", err)
	}

	r.logger.Debug("Analysis saved", zap.String("id", id), zap.String("url", data.URL))
	return id, nil
}

// SaveRedesign inserts one redesign row and returns its id. analysisID may be
// empty when the source analysis could not be persisted.
func (r *RecordRepository) SaveRedesign(ctx context.Context, userID, analysisID string, style domain.DesignStyle, html, css, preview string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO website_redesigns (id, user_id, analysis_id, design_style, html, css, preview)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, nullableString(analysisID), string(style), html, css, preview,
	)
	if err != nil {
		return "", perrors.NewPersistenceError("save redesign", err)
	}

	r.logger.Debug("Redesign saved",
		zap.String("id", id),
		zap.String("analysis_id", analysisID),
		zap.String("style", string(style)),
	)
	return id, nil
}

// ListAnalyses returns the user's analyses, newest first.
func (r *RecordRepository) ListAnalyses(ctx context.Context, userID string, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, url, colors, fonts, layout, elements, images, content_structure, created_at
		FROM website_analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, perrors.NewPersistenceError("list analyses", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		record, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, perrors.NewPersistenceError("list analyses", err)
	}
	return records, nil
}

// GetAnalysis returns one analysis by id, scoped to the user.
func (r *RecordRepository) GetAnalysis(ctx context.Context, userID, id string) (*AnalysisRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, url, colors, fonts, layout, elements, images, content_structure, created_at
		FROM website_analyses
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	record, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRedesignsForAnalysis returns redesigns generated from one analysis.
func (r *RecordRepository) ListRedesignsForAnalysis(ctx context.Context, userID, analysisID string) ([]RedesignRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, COALESCE(analysis_id::text, ''), design_style, html, css, preview, created_at
		FROM website_redesigns
		WHERE user_id = $1 AND analysis_id = $2
		ORDER BY created_at DESC`,
		userID, analysisID,
	)
	if err != nil {
		return nil, perrors.NewPersistenceError("list redesigns", err)
	}
	defer rows.Close()

	var records []RedesignRecord
	for rows.Next() {
		var record RedesignRecord
		var style string
		if err := rows.Scan(&record.ID, &record.UserID, &record.AnalysisID, &style,
			&record.HTML, &record.CSS, &record.Preview, &record.CreatedAt); err != nil {
			return nil, perrors.NewPersistenceError("scan redesign", err)
		}
		record.DesignStyle = domain.DesignStyle(style)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, perrors.NewPersistenceError("list redesigns", err)
	}
	return records, nil
}

// GetRedesign returns one redesign by id, scoped to the user.
func (r *RecordRepository) GetRedesign(ctx context.Context, userID, id string) (*RedesignRecord, error) {
	var record RedesignRecord
	var style string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, COALESCE(analysis_id::text, ''), design_style, html, css, preview, created_at
		FROM website_redesigns
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&record.ID, &record.UserID, &record.AnalysisID, &style,
		&record.HTML, &record.CSS, &record.Preview, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, perrors.NewPersistenceError("get redesign", err)
	}
	record.DesignStyle = domain.DesignStyle(style)
	return &record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (AnalysisRecord, error) {
	var record AnalysisRecord
	var colors, fonts, layout, elements []byte
	var images, content []byte

	err := row.Scan(&record.ID, &record.UserID, &record.Data.URL,
		&colors, &fonts, &layout, &elements, &images, &content, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record, err
		}
		return record, perrors.NewPersistenceError("scan analysis", err)
	}

	if err := json.Unmarshal(colors, &record.Data.Colors); err != nil {
		return record, perrors.NewPersistenceError("decode analysis", err)
	}
	if err := json.Unmarshal(fonts, &record.Data.Fonts); err != nil {
		return record, perrors.NewPersistenceError("decode analysis", err)
	}
	if len(layout) > 0 {
		if err := json.Unmarshal(layout, &record.Data.Layout); err != nil {
			return record, perrors.NewPersistenceError("decode analysis", err)
		}
	}
	if err := json.Unmarshal(elements, &record.Data.Elements); err != nil {
		return record, perrors.NewPersistenceError("decode analysis", err)
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &record.Data.Images); err != nil {
			return record, perrors.NewPersistenceError("decode analysis", err)
		}
	}
	if len(content) > 0 {
		record.Data.ContentStructure = &domain.ContentStructure{}
		if err := json.Unmarshal(content, record.Data.ContentStructure); err != nil {
			return record, perrors.NewPersistenceError("decode analysis", err)
		}
	}
	return record, nil
}

func nullable(data []byte) any {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return data
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
