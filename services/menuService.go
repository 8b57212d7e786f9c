package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/models"
)

// MenuService is the catalog. Items are created and listed, never mutated.
type MenuService struct {
	menus database.Collection
}

func NewMenuService(menus database.Collection) *MenuService {
	return &MenuService{menus: menus}
}

func (s *MenuService) Create(ctx context.Context, menu *models.Menu) error {
	menu.ID = primitive.NewObjectID()
	if menu.Is_available == nil {
		available := true
		menu.Is_available = &available
	}
	menu.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	menu.Updated_at = menu.Created_at

	if err := s.menus.InsertOne(ctx, menu); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *MenuService) ListAll(ctx context.Context) ([]models.Menu, error) {
	var items []models.Menu
	if err := s.menus.Find(ctx, bson.M{}, nil, &items); err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *MenuService) ListByCategory(ctx context.Context, category string) ([]models.Menu, error) {
	var items []models.Menu
	if err := s.menus.Find(ctx, bson.M{"category": category}, nil, &items); err != nil {
		return nil, apperr.Internal(err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("Menu with category '%s' not found", category))
	}
	return items, nil
}
