package api

import (
	"apple-chase/internal/domain"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewServerMessage_NilItemIsNull(t *testing.T) {
	msg, err := NewServerMessage(MsgItem, NewCollectibleView(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Payload) != "null" {
		t.Errorf("Expected null payload, got %s", msg.Payload)
	}

	if _, err := NewServerMessage("", nil); err == nil {
		t.Error("Expected error for empty message type")
	}
}

func TestNewPlayerViews_EmptyIsArray(t *testing.T) {
	msg, err := NewServerMessage(MsgPlayers, NewPlayerViews(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Payload) != "[]" {
		t.Errorf("Expected [], got %s", msg.Payload)
	}
}

func TestDecodePayload(t *testing.T) {
	if _, err := DecodePayload[PlayerView](nil); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Expected ErrEmptyPayload for nil, got %v", err)
	}
	if _, err := DecodePayload[PlayerView](json.RawMessage("null")); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Expected ErrEmptyPayload for null, got %v", err)
	}
	if _, err := DecodePayload[PlayerView](json.RawMessage(`{"id":"abc"}`)); err == nil {
		t.Error("Expected type error for string id")
	}

	raw := json.RawMessage(`{"id":17,"socketId":"s1","x":5,"y":6,"score":2,"avatarSize":40,
		"playerMinX":10,"playerMinY":60,"playerMaxX":590,"playerMaxY":430}`)
	v, err := DecodePayload[PlayerView](raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := v.ToDomain()
	want := domain.Player{
		ID: 17, ConnID: "s1", X: 5, Y: 6, Score: 2, AvatarSize: 40,
		Bounds: domain.Bounds{MinX: 10, MinY: 60, MaxX: 590, MaxY: 430},
	}
	if p != want {
		t.Errorf("ToDomain() = %+v, want %+v", p, want)
	}
}

func TestToDomain_Fallbacks(t *testing.T) {
	p := PlayerView{ID: 1}.ToDomain()
	if p.AvatarSize != domain.FallbackAvatarSize {
		t.Errorf("Expected fallback avatar size, got %d", p.AvatarSize)
	}
	if p.Bounds.MaxX != domain.FallbackMaxCoord || p.Bounds.MaxY != domain.FallbackMaxCoord {
		t.Errorf("Expected fallback bounds, got %+v", p.Bounds)
	}

	item := CollectibleView{ID: 1, X: 100, Y: 100}.ToDomain()
	if item.Size != domain.FallbackItemSize {
		t.Errorf("Expected fallback item size, got %d", item.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		wantErr bool
	}{
		{"valid player", PlayerView{ID: 1, Score: 0, AvatarSize: 40}, false},
		{"player without id", PlayerView{Score: 1}, true},
		{"negative score", PlayerView{ID: 1, Score: -1}, true},
		{"negative avatar", PlayerView{ID: 1, AvatarSize: -1}, true},
		// Координаты за полем не проверяются
		{"player off the map", PlayerView{ID: 1, X: -9999, Y: 99999}, false},
		{"valid item", CollectibleView{ID: 5, ItemSize: 20, Value: 1}, false},
		{"item without id", CollectibleView{ItemSize: 20}, true},
		{"negative item size", CollectibleView{ID: 5, ItemSize: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
