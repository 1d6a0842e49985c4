package strategy

import (
	"fmt"
)

// New creates a new strategy of the specified type.
func New(strategyType Type) (Strategy, error) {
	switch strategyType {
	case TypeSerial:
		return NewSerial(), nil
	case TypeParallel:
		return NewParallel(), nil
	case TypeSingleTask:
		return NewSingleTask(), nil
	case TypeBatchInvoke:
		return NewBatchInvoke(), nil
	case TypeBatchSubmit:
		return NewBatchSubmit(), nil
	default:
		return nil, fmt.Errorf("unknown strategy type: %s", strategyType)
	}
}

// NewFromString creates a new strategy from a string type name.
func NewFromString(strategyType string) (Strategy, error) {
	return New(Type(strategyType))
}

// All returns every strategy type in canonical benchmark order.
func All() []Type {
	return []Type{
		TypeSerial,
		TypeParallel,
		TypeSingleTask,
		TypeBatchInvoke,
		TypeBatchSubmit,
	}
}

// IsValidType returns true if the string names a known strategy type.
func IsValidType(strategyType string) bool {
	switch Type(strategyType) {
	case TypeSerial, TypeParallel, TypeSingleTask, TypeBatchInvoke, TypeBatchSubmit:
		return true
	default:
		return false
	}
}

// ParseTypes resolves a list of strategy names, or the full canonical list
// when names is empty. Duplicates are preserved in the order given.
func ParseTypes(names []string) ([]Type, error) {
	if len(names) == 0 {
		return All(), nil
	}

	types := make([]Type, 0, len(names))
	for _, name := range names {
		if !IsValidType(name) {
			return nil, fmt.Errorf("unknown strategy type: %s", name)
		}
		types = append(types, Type(name))
	}
	return types, nil
}

// Description provides documentation for a strategy type.
type Description struct {
	Type        Type
	Name        string
	Description string
}

// Describe returns documentation for a strategy type.
func Describe(strategyType Type) *Description {
	switch strategyType {
	case TypeSerial:
		return &Description{
			Type:        TypeSerial,
			Name:        "Serial",
			Description: "Filters the candidate sequence in order on the calling goroutine. Baseline and correctness reference.",
		}
	case TypeParallel:
		return &Description{
			Type:        TypeParallel,
			Name:        "Parallel",
			Description: "Splits the sequence into contiguous partitions and filters them on a fixed-size worker pool, merging partial results in submission order.",
		}
	case TypeSingleTask:
		return &Description{
			Type:        TypeSingleTask,
			Name:        "Single Task",
			Description: "Submits the whole parallel filter as one task and blocks on its single future. Measures the cost of one extra scheduling hop.",
		}
	case TypeBatchInvoke:
		return &Description{
			Type:        TypeBatchInvoke,
			Name:        "Batch Invoke",
			Description: "Submits one task per candidate as a batch and waits on all of them collectively. Individual outcomes stay retrievable after the wait.",
		}
	case TypeBatchSubmit:
		return &Description{
			Type:        TypeBatchSubmit,
			Name:        "Batch Submit",
			Description: "Submits one task per candidate individually, collecting a future handle per task; handles are drained in submission order.",
		}
	default:
		return nil
	}
}
