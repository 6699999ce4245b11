package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence/models"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNoteRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNoteRepository creates a new GORM-based NoteRepository implementation
func NewGormNoteRepository(db *gorm.DB, logger logger.Logger) (notes.NoteRepository, error) {
	return &gormNoteRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNoteRepository) Create(ctx context.Context, note *notes.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NoteModel{}
	model.FromDomain(note)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	note.ID = model.ID
	note.CreatedAt = model.CreatedAt

	r.logger.Info("Created note with id ", note.ID, " for user ", note.UserID)
	return nil
}

func (r *gormNoteRepository) ListByUser(ctx context.Context, userID uint, query *notes.NoteQuery) ([]*notes.Note, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.NoteModel
	dbQuery := r.db.WithContext(ctx).Model(&models.NoteModel{}).Where("user_id = ?", userID)

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "desc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	domainList := make([]*notes.Note, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormNoteRepository) GetByID(ctx context.Context, userID, noteID uint) (*notes.Note, error) {
	var model models.NoteModel
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", noteID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notes.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNoteRepository) DeleteByID(ctx context.Context, userID, noteID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", noteID, userID).Delete(&models.NoteModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notes.ErrNoteNotFound
	}

	r.logger.Info("Deleted note with id ", noteID)
	return nil
}
