package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Validate проверяет только форму записи. Координаты не проверяются:
// сервер доверяет клиенту.
func (p PlayerView) Validate() error {
	if p.ID == 0 {
		return errors.New("player id is required")
	}
	if p.Score < 0 {
		return errors.New("score cannot be negative")
	}
	if p.AvatarSize < 0 {
		return errors.New("avatarSize cannot be negative")
	}
	return nil
}

func (c CollectibleView) Validate() error {
	if c.ID == 0 {
		return errors.New("item id is required")
	}
	if c.ItemSize < 0 {
		return errors.New("itemSize cannot be negative")
	}
	return nil
}
