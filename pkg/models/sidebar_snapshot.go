package models

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

// SidebarSnapshot is a processed sidebar as it was produced by one
// processing run.
type SidebarSnapshot struct {
	gorm.Model

	// RunID groups the snapshots written by the same processing run.
	RunID uuid.UUID `gorm:"type:uuid;not null;index:idx_sidebar_snapshots_run"`

	VersionName string `gorm:"type:varchar(200);not null;index:idx_sidebar_snapshots_version_sidebar"`
	SidebarName string `gorm:"type:varchar(200);not null;index:idx_sidebar_snapshots_version_sidebar"`

	// ItemCount is the number of items at every depth.
	ItemCount int `gorm:"not null"`

	Tree Tree `gorm:"type:text;not null"`
}

// TableName specifies the table name.
func (SidebarSnapshot) TableName() string {
	return "sidebar_snapshots"
}

// NewSidebarSnapshot builds a snapshot of a processed sidebar.
func NewSidebarSnapshot(runID uuid.UUID, versionName, sidebarName string, s sidebar.Sidebar) *SidebarSnapshot {
	count := 0
	sidebar.Walk(s, func(sidebar.Item) { count++ })

	return &SidebarSnapshot{
		RunID:       runID,
		VersionName: versionName,
		SidebarName: sidebarName,
		ItemCount:   count,
		Tree:        Tree(s),
	}
}

// Create creates a new sidebar snapshot in the database.
func (s *SidebarSnapshot) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.RunID, validation.By(notNilUUID)),
		validation.Field(&s.VersionName, validation.Required),
		validation.Field(&s.SidebarName, validation.Required),
	); err != nil {
		return fmt.Errorf("invalid sidebar snapshot: %w", err)
	}

	return db.Create(s).Error
}

// CreateSidebarSnapshots stores the snapshots of one run in a single
// transaction.
func CreateSidebarSnapshots(db *gorm.DB, snapshots []*SidebarSnapshot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range snapshots {
			if err := s.Create(tx); err != nil {
				return fmt.Errorf("sidebar %q: %w", s.SidebarName, err)
			}
		}
		return nil
	})
}

// GetLatestSidebarSnapshot retrieves the most recent snapshot of a sidebar.
func GetLatestSidebarSnapshot(db *gorm.DB, versionName, sidebarName string) (*SidebarSnapshot, error) {
	if err := validation.Validate(sidebarName, validation.Required); err != nil {
		return nil, fmt.Errorf("sidebar name: %w", err)
	}

	var s SidebarSnapshot
	err := db.Where("version_name = ? AND sidebar_name = ?", versionName, sidebarName).
		Order("id DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSidebarSnapshotsByRun retrieves all snapshots written by a run,
// ordered by sidebar name.
func ListSidebarSnapshotsByRun(db *gorm.DB, runID uuid.UUID) ([]SidebarSnapshot, error) {
	var snapshots []SidebarSnapshot
	err := db.Where("run_id = ?", runID).
		Order("sidebar_name ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func notNilUUID(value any) error {
	if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
		return errors.New("cannot be nil")
	}
	return nil
}
