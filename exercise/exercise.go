// Package exercise defines the practice exercise records and the repository
// that supplies them.
package exercise

// Record is one practice exercise: a natural-language prompt paired with a
// reference solution and metadata. Records are immutable; identity is ID.
type Record struct {
	ID           string
	Prompt       string
	Hint         string
	Tables       []string // tables the exercise touches, for the schema command
	Difficulty   Difficulty
	ReferenceSQL string
	Concepts     []string
}

// Difficulty grades an exercise for display.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	}
	return "unknown"
}

// Repository supplies the exercise set. All returns records in a stable
// order across calls within one process; shuffling is the trainer's job.
type Repository interface {
	All() []Record
}

// StaticRepository serves a fixed slice of records.
type StaticRepository struct {
	records []Record
}

// NewStaticRepository wraps records in a Repository.
func NewStaticRepository(records []Record) *StaticRepository {
	return &StaticRepository{records: records}
}

// All returns the records in their original order. Callers get a copy of the
// slice header chain so they can shuffle without disturbing the repository.
func (r *StaticRepository) All() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
