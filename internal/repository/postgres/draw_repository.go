package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"lottoInsight/business/drawstore"
	"lottoInsight/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type drawRow struct {
	ID       uint64         `gorm:"primaryKey"`
	Game     string         `gorm:"column:game;not null"`
	DrawDate string         `gorm:"column:draw_date;not null"`
	Numbers  datatypes.JSON `gorm:"column:numbers;type:jsonb"`
	Special  int            `gorm:"column:special;not null;default:0"`
}

func (drawRow) TableName() string {
	return "lotto_draws"
}

type DrawRepository struct {
	DB *gorm.DB
}

var _ drawstore.DrawRepository = (*DrawRepository)(nil)

func NewDrawRepository(db *gorm.DB) *DrawRepository {
	return &DrawRepository{DB: db}
}

func (r *DrawRepository) FindByGame(ctx context.Context, game domain.GameID) ([]domain.DrawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []drawRow
	err := r.DB.WithContext(ctx).
		Where("game = ?", string(game)).
		Order("draw_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query lotto_draws: %w", err)
	}

	out := make([]domain.DrawRecord, 0, len(rows))
	for _, row := range rows {
		var numbers []int
		if err := json.Unmarshal(row.Numbers, &numbers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal numbers of %s %s: %w", game, row.DrawDate, err)
		}
		out = append(out, domain.DrawRecord{
			Date:    row.DrawDate,
			Main:    numbers,
			Special: row.Special,
		})
	}

	return out, nil
}
