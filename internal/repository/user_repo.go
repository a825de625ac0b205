package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"school-api/internal/database"
	"school-api/internal/model"
	"school-api/pkg/apierror"
)

const credentialColumns = `
	SELECT u.id, u.username, u.email, u.password_hash, u.rol_id, r.nombre, u.activo
	FROM usuarios u
	LEFT JOIN roles r ON r.id = u.rol_id`

// UserRepository reads credentials. It never writes.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindActiveByUsername matches the username exactly as stored and only among
// active credentials.
func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (model.Credential, error) {
	return r.findOne(ctx, credentialColumns+` WHERE u.username = $1 AND u.activo = true`, username)
}

// FindByUsername ignores the active flag.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.Credential, error) {
	return r.findOne(ctx, credentialColumns+` WHERE u.username = $1`, username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, username string) (model.Credential, error) {
	var c model.Credential
	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		var scanErr error
		c, scanErr = scanCredential(conn.QueryRow(ctx, query, username))
		return scanErr
	})

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Credential{}, apierror.NotFound("user not found", username)
	}
	if err != nil {
		return model.Credential{}, apierror.UpstreamUnavailable(fmt.Errorf("find user by username: %w", err))
	}
	return c, nil
}

func scanCredential(row pgx.Row) (model.Credential, error) {
	var c model.Credential
	err := row.Scan(&c.ID, &c.Username, &c.Email, &c.PasswordHash, &c.RoleID, &c.RoleName, &c.Active)
	return c, err
}
