package mysql

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jennaaaaaaaaa/node-lv5/internal/ranking"
)

// rankColl binds the ranking algorithm to one table inside the current
// transaction. Touched rows are locked FOR UPDATE so two concurrent
// relocations cannot mint duplicate ranks.
type rankColl struct {
	tx    *gorm.DB
	model any
}

var _ ranking.Collection = rankColl{}

func (c rankColl) MaxRank(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := c.tx.WithContext(ctx).Model(c.model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("MAX(`order`)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return int(max.Int64), nil
}

func (c rankColl) HolderOf(ctx context.Context, rank int) (uint64, bool, error) {
	var ids []uint64
	err := c.tx.WithContext(ctx).Model(c.model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("`order` = ?", rank).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

func (c rankColl) SetRank(ctx context.Context, id uint64, rank int) error {
	return c.tx.WithContext(ctx).Model(c.model).
		Where("id = ?", id).
		Update("order", rank).Error
}
