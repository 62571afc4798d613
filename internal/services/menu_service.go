package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"admind/internal/models"
)

// baselineMenus returns the navigation skeleton seeded on first start. The
// frontend renders whatever rows exist; operators extend the set through
// the menu routes afterwards.
func baselineMenus() (top []models.Menu, systemChildren []models.Menu) {
	top = []models.Menu{
		{Name: "Dashboard", Path: "/dashboard", Icon: "dashboard", Order: 1},
		{Name: "System", Path: "/system", Icon: "setting", Order: 2},
	}
	systemChildren = []models.Menu{
		{Name: "Users", Path: "/system/users", Icon: "user", Order: 1},
		{Name: "Menus", Path: "/system/menus", Icon: "menu", Order: 2},
	}
	return top, systemChildren
}

// MenuService provides navigation-record operations backed by the
// registered database.
type MenuService struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewMenuService creates a new menu service with the injected logger.
func NewMenuService(db *gorm.DB, logger *slog.Logger) *MenuService {
	return &MenuService{
		db:     db,
		logger: logger.With(slog.String("service", "menu")),
	}
}

// EnsureBaselineMenus seeds the baseline navigation records if none exist.
// It is idempotent: any existing menu row makes it a no-op, and the seed runs
// in a single transaction so a partial failure leaves no rows behind for the
// next start to trip over.
func (s *MenuService) EnsureBaselineMenus(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Menu{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count menus: %w", err)
		}
		if count > 0 {
			s.logger.DebugContext(ctx, "menus already present", slog.Int64("count", count))
			return nil
		}

		top, children := baselineMenus()
		if err := tx.Create(&top).Error; err != nil {
			return fmt.Errorf("failed to seed baseline menus: %w", err)
		}
		// Children hang off the System entry, created above.
		systemID := top[len(top)-1].ID
		for i := range children {
			children[i].ParentID = systemID
		}
		if err := tx.Create(&children).Error; err != nil {
			return fmt.Errorf("failed to seed baseline menus: %w", err)
		}

		s.logger.InfoContext(ctx, "seeded baseline menus",
			slog.Int("count", len(top)+len(children)))
		return nil
	})
}

// List returns all menus ordered for display.
func (s *MenuService) List(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.WithContext(ctx).
		Order("parent_id, menu_order").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}
