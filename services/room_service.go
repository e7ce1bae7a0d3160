package services

import (
	"errors"
	"fmt"

	"resort-backend/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room_not_found")

// RoomReader is the narrow read surface the booking flow needs from the
// inventory; the rest of the Room CRUD lives with whoever curates content.
type RoomReader interface {
	GetRoom(id uint) (*models.Room, error)
}

// RoomService reads rooms from the inventory table.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) GetRoomBySlug(slug string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("slug = ?", slug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %q: %w", slug, err)
	}
	return &room, nil
}

func (s *RoomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("price_ngn ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}
