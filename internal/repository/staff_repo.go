package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

type staffModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	FullName     string     `gorm:"column:full_name"`
	Email        string     `gorm:"column:email;uniqueIndex"`
	Phone        string     `gorm:"column:phone"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"column:role"`
	Active       bool       `gorm:"column:active"`
	TwoFAEnabled bool       `gorm:"column:two_fa_enabled"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (staffModel) TableName() string { return "staff" }

func toDomainStaff(m staffModel) *domain.Staff {
	return &domain.Staff{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         domain.StaffRole(m.Role),
		Active:       m.Active,
		TwoFAEnabled: m.TwoFAEnabled,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	m := staffModel{
		FullName:     s.FullName,
		Email:        s.Email,
		Phone:        s.Phone,
		PasswordHash: s.PasswordHash,
		Role:         string(s.Role),
		Active:       true,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStaff(m)
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	var m staffModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStaff(m), nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	var m staffModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStaff(m), nil
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	var rows []staffModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Staff, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainStaff(m))
	}
	return out, nil
}

func (r *StaffRepository) UpdateRole(ctx context.Context, id int64, role domain.StaffRole) error {
	return r.db.WithContext(ctx).
		Model(&staffModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": string(role), "updated_at": time.Now().UTC()}).Error
}

func (r *StaffRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&staffModel{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{"active": false, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StaffRepository) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&staffModel{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error
}
