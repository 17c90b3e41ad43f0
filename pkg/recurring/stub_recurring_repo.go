package recurring

import (
	"context"
	"slices"
)

// StubRepo keeps recurring items in memory for tests.
type StubRepo struct {
	data map[int][]RecurringItem
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[int][]RecurringItem{}}
}

func (s *StubRepo) GetAll(ctx context.Context, userId int) ([]RecurringItem, error) {
	return slices.Clone(s.data[userId]), nil
}

func (s *StubRepo) Get(ctx context.Context, userId int, id string) (RecurringItem, error) {
	for _, item := range s.data[userId] {
		if item.ID == id {
			return item, nil
		}
	}
	return RecurringItem{}, ErrNotFound
}

func (s *StubRepo) Store(ctx context.Context, userId int, item RecurringItem) error {
	s.data[userId] = append(s.data[userId], item)
	return nil
}

func (s *StubRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	items := s.data[userId]
	for i, item := range items {
		if item.ID == id {
			s.data[userId] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepo) UpdateLastGenerated(ctx context.Context, userId int, id string, lastGenerated string) error {
	items := s.data[userId]
	for i, item := range items {
		if item.ID == id {
			items[i].LastGenerated = lastGenerated
			return nil
		}
	}
	return ErrNotFound
}

func (s *StubRepo) Cleanup() {
	s.data = map[int][]RecurringItem{}
}
