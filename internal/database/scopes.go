package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ContainsFold matches rows where any of columns contains term, ignoring case.
func ContainsFold(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + utils.EscapeLike(term) + "%"
		cond := db.Session(&gorm.Session{NewDB: true})
		for i, column := range columns {
			expr := "LOWER(" + column + ") LIKE LOWER(?) ESCAPE '" + utils.LikeEscapeChar + "'"
			if i == 0 {
				cond = cond.Where(expr, pattern)
			} else {
				cond = cond.Or(expr, pattern)
			}
		}
		return db.Where(cond)
	}
}
