package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
)

// DefaultPassword is the credential a fresh deployment starts with,
// until the admin changes it through the panel.
const DefaultPassword = "admin123"

var (
	ErrCredentialNotFound = errors.New("credential record not found")
	ErrPasswordEmpty      = errors.New("password empty")
)

// Credential is the single admin credential record. The password is kept
// in plain text to match what the admin panel expects; see DESIGN.md for
// why this is not silently upgraded to a hash.
type Credential struct {
	Password    string    `json:"password"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type CredentialStore interface {
	Get(ctx context.Context) (*Credential, error)
	Ensure(ctx context.Context) (*Credential, error)
	Update(ctx context.Context, newPassword string) error
}

var _ CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo keeps the credential in a one-row table; the check
// constraint on id makes the singleton explicit instead of accidental.
type CredentialRepo struct {
	db *pgxpool.Pool
}

func NewCredentialRepo(db *pgxpool.Pool) *CredentialRepo {
	return &CredentialRepo{
		db: db,
	}
}

func (r *CredentialRepo) Get(ctx context.Context) (*Credential, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "credentialRepo.Get")
	defer span.End()

	var c Credential
	err := r.db.QueryRow(
		ctx,
		`SELECT password, last_updated FROM admin_credential WHERE id = 1;`,
	).Scan(&c.Password, &c.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Ensure lazily creates the default credential record and returns the
// record that is now guaranteed to exist. Login and ChangePassword both
// go through here, so the "record existed" and "record just created"
// cases share one code path and one comparison.
func (r *CredentialRepo) Ensure(ctx context.Context) (*Credential, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "credentialRepo.Ensure")
	defer span.End()

	if _, err := r.db.Exec(
		ctx,
		`
			INSERT INTO admin_credential (id, password, last_updated)
			VALUES (1, $1, NOW())
			ON CONFLICT (id) DO NOTHING;
		`,
		DefaultPassword,
	); err != nil {
		return nil, err
	}

	return r.Get(ctx)
}

func (r *CredentialRepo) Update(ctx context.Context, newPassword string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "credentialRepo.Update")
	defer span.End()

	if newPassword == "" {
		return ErrPasswordEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE admin_credential SET password = $1, last_updated = NOW() WHERE id = 1;`,
		newPassword,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
