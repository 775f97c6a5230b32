package room

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
)

const (
	MaxRoomNameLength = 255
)

type Room struct {
	id   uuid.UUID
	name string
}

func NewRoom(name string) (*Room, error) {
	return Reconstruct(uuid.New(), name)
}

func Reconstruct(id uuid.UUID, name string) (*Room, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Room{id: id, name: name}, nil
}

// Rename replaces the name after the same normalization as NewRoom.
func (r *Room) Rename(name string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	r.name = name
	return nil
}

// NormalizeName trims and NFC-composes the name, so visually identical names
// typed on different keyboards collide on the unique index.
func NormalizeName(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", ErrEmptyRoomName
	}
	if utf8.RuneCountInString(name) > MaxRoomNameLength {
		return "", ErrRoomNameTooLong
	}
	return name, nil
}

func (r *Room) ID() uuid.UUID { return r.id }
func (r *Room) Name() string  { return r.name }
