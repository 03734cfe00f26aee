package repositoryImp

import (
	"gorm.io/gorm"

	"shoopaholic/entities"
	"shoopaholic/pkg/querylog/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Record(text string) (*entities.QueryRecord, error) {
	rec := &entities.QueryRecord{Text: text}
	if err := r.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *sqliteRepo) Recent(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	var recs []entities.QueryRecord
	if err := r.db.Order("id desc").Limit(n).Find(&recs).Error; err != nil {
		return nil, err
	}
	texts := make([]string, len(recs))
	for i := range recs {
		texts[i] = recs[i].Text
	}
	return texts, nil
}

func (r *sqliteRepo) Total() (int64, error) {
	var total int64
	return total, r.db.Model(&entities.QueryRecord{}).Count(&total).Error
}
