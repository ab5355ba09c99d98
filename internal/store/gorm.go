package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskboard-dev/taskboard/internal/models"
	"gorm.io/gorm"
)

// GormStore keeps records in a relational database through gorm. The
// *gorm.DB should be opened with TranslateError so unique violations map to
// ErrDuplicate.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translateGormError(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &user, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &user, nil
}

func (s *GormStore) CreateProject(ctx context.Context, project *models.Project) error {
	return translateGormError(s.db.WithContext(ctx).Create(project).Error)
}

func (s *GormStore) FindProject(ctx context.Context, id, ownerID string) (*models.Project, error) {
	var project models.Project

	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, ownerID).
		First(&project).Error

	if err != nil {
		return nil, translateGormError(err)
	}

	return &project, nil
}

func (s *GormStore) ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects := []models.Project{}

	err := s.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Order("created_at asc").
		Find(&projects).Error

	if err != nil {
		return nil, translateGormError(err)
	}

	return projects, nil
}

// SaveProject writes every column of project. It never inserts: a project
// deleted in the meantime yields ErrNotFound.
func (s *GormStore) SaveProject(ctx context.Context, project *models.Project) error {
	tx := s.db.WithContext(ctx).Model(project).Select("*").Omit("created_at").Updates(project)

	if tx.Error != nil {
		return translateGormError(tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) DeleteProject(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})

	if tx.Error != nil {
		return translateGormError(tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) CreateTask(ctx context.Context, task *models.Task) error {
	return translateGormError(s.db.WithContext(ctx).Create(task).Error)
}

func (s *GormStore) FindTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, translateGormError(err)
	}

	return &task, nil
}

func (s *GormStore) ListTasksByProjects(ctx context.Context, projectIDs []string) ([]models.Task, error) {
	tasks := []models.Task{}

	if len(projectIDs) == 0 {
		return tasks, nil
	}

	err := s.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("created_at asc").
		Find(&tasks).Error

	if err != nil {
		return nil, translateGormError(err)
	}

	return tasks, nil
}

func (s *GormStore) SaveTask(ctx context.Context, task *models.Task) error {
	tx := s.db.WithContext(ctx).Model(task).Select("*").Omit("created_at").Updates(task)

	if tx.Error != nil {
		return translateGormError(tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) DeleteTask(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})

	if tx.Error != nil {
		return translateGormError(tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) DeleteTasksByProject(ctx context.Context, projectID string) (int64, error) {
	tx := s.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.Task{})

	if tx.Error != nil {
		return 0, translateGormError(tx.Error)
	}

	return tx.RowsAffected, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
