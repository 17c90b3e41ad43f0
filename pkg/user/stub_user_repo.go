package user

import (
	"context"
)

type StubUserRepository struct {
	nextId int
	data   map[int]User
}

func NewStubUserRepository() *StubUserRepository {
	nextId := 2
	data := map[int]User{}
	return &StubUserRepository{nextId: nextId, data: data}
}

func (s *StubUserRepository) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[s.nextId] = user
	return s.nextId, nil
}

func (s *StubUserRepository) GetUser(ctx context.Context, id int) (User, error) {
	user, ok := s.data[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *StubUserRepository) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, user := range s.data {
		if user.Uid == uid {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepository) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	if _, ok := s.data[userId]; !ok {
		return User{}, ErrUserNotFound
	}
	s.data[userId] = user
	return user, nil
}

func (s *StubUserRepository) DeleteUser(ctx context.Context, id int) error {
	delete(s.data, id)
	return nil
}

func (s *StubUserRepository) GetAllUsers(ctx context.Context) ([]User, error) {
	var users []User
	for _, user := range s.data {
		users = append(users, user)
	}
	return users, nil
}

func (s *StubUserRepository) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	for _, user := range s.data {
		if user.Username == username {
			return false, nil
		}
	}
	return true, nil
}
