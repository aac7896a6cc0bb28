package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// MaxListSize caps every list query
const MaxListSize = 1000

// ownedWorkspaceIDs is a sub-select of the workspace ids owned by ownerID
func ownedWorkspaceIDs(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&domain.Workspace{}).
		Select("id").
		Where("owner_id = ?", ownerID)
}

// ownedBoardIDs is a sub-select of the board ids whose workspace is owned by ownerID
func ownedBoardIDs(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&domain.Board{}).
		Select("id").
		Where("workspace_id IN (?)", ownedWorkspaceIDs(db, ownerID))
}

// existingBoardIDs is a sub-select of all board ids
func existingBoardIDs(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&domain.Board{}).
		Select("id")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term as a literal substring
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// rowsOrNotFound turns a zero-row write into gorm.ErrRecordNotFound
func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
