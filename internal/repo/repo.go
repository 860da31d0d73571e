// Package repo is the persistence layer. Uniqueness of emails and SKUs is
// enforced by database constraints; gorm's TranslateError turns violations
// into gorm.ErrDuplicatedKey which is mapped to the Conflict errors here, so
// concurrent duplicate submissions cannot race past an application pre-check.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}
