package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (u *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, username, display_name) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := u.db.QueryRowContext(ctx, query, user.Uid, user.Username, user.DisplayName).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, display_name FROM users WHERE id = $1`
	var user User
	err := u.db.QueryRowContext(ctx, query, id).
		Scan(&user.Id, &user.Uid, &user.Username, &user.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, username, display_name FROM users WHERE uid = $1`
	var user User
	err := u.db.QueryRowContext(ctx, query, uid).
		Scan(&user.Id, &user.Uid, &user.Username, &user.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		log.Infof("user with uid %s not found", uid)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *RepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = $1 WHERE id = $2`
	result, err := u.db.ExecContext(ctx, query, user.DisplayName, userId)
	if err != nil {
		return User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return User{}, fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Info("no rows affected of updating user")
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *RepoImpl) DeleteUser(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := u.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Info("no rows affected of deleting user")
		return ErrUserNotFound
	}
	return nil
}

func (u *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := `SELECT id, uid, username, display_name FROM users`
	rows, err := u.db.QueryContext(ctx, query)
	if err != nil {
		log.Errorf("failed to get users: %v", err)
		return nil, err
	}
	defer rows.Close()
	users := make([]User, 0, 10)
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Id, &user.Uid, &user.Username, &user.DisplayName); err != nil {
			log.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}
	return users, nil
}

func (u *RepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = $1`
	var count int
	if err := u.db.QueryRowContext(ctx, query, username).Scan(&count); err != nil {
		log.Errorf("failed to check username availability: %v", err)
		return false, err
	}
	return count == 0, nil
}
