package db

import (
	"gorm.io/gorm"

	"dialpool/internal/shared/query"
)

// Paginate applies offset and limit from a page filter.
//
//	db.Model(&models.RecordModel{}).Scopes(db.Paginate(filter.PageFilter)).Find(&rows)
func Paginate(page query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Offset()).Limit(page.Limit())
	}
}

// OldestFirst orders by creation time with the primary key as tie breaker,
// giving a total order over rows created in the same millisecond.
func OldestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at ASC").Order(table + ".id ASC")
	}
}
