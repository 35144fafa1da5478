package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit: сколько последних сканов хранится на владельца.
const DefaultLimit = 10

// AnonymousOwner keys history when requests are not authenticated.
const AnonymousOwner = "anonymous"

var ErrInvalidRecord = errors.New("history record is invalid")

// Record is one finished scan.
type Record struct {
	ID       uuid.UUID `json:"id"`
	Date     time.Time `json:"date"`
	Filename string    `json:"filename"`
	JobTitle string    `json:"jobTitle"`
	Score    int       `json:"score"`
	ATSScore int       `json:"ats_score"`
	Summary  string    `json:"summary"`
}

// Stats summarizes the kept records. Delta is latest minus previous and is
// nil with fewer than two records.
type Stats struct {
	Count   int  `json:"count"`
	Latest  int  `json:"latest"`
	Best    int  `json:"best"`
	Average int  `json:"average"`
	Delta   *int `json:"delta"`
}

// Store: порт хранилища истории. List returns records newest first.
type Store interface {
	Append(ctx context.Context, owner string, rec Record, keep int) error
	List(ctx context.Context, owner string, limit, offset int) ([]Record, error)
	Clear(ctx context.Context, owner string) error
}

type UseCase interface {
	Add(ctx context.Context, owner string, rec Record) (Record, error)
	List(ctx context.Context, owner string, limit, offset int) ([]Record, Stats, error)
	Clear(ctx context.Context, owner string) error
}
