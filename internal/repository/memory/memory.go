package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/entity"
)

// Repo is a thread-safe in-memory repository. All writers serialize on
// a single mutex, so update and delete are atomic with respect to
// concurrent listings.
type Repo struct {
	mu      sync.RWMutex
	seq     uint64
	entries map[string]diaryRecord
	memos   map[string]memoRecord
	users   map[string]entity.User
}

type diaryRecord struct {
	entity.DiaryEntry
	seq uint64
}

type memoRecord struct {
	entity.Memo
	seq uint64
}

func New() *Repo {
	return &Repo{
		entries: make(map[string]diaryRecord),
		memos:   make(map[string]memoRecord),
		users:   make(map[string]entity.User),
	}
}

// nextSeqLocked is the deterministic tie-break for records sharing a
// CreatedAt timestamp: later insertions sort first.
func (r *Repo) nextSeqLocked() uint64 {
	r.seq++
	return r.seq
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
