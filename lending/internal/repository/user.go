package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var userColumns = []string{"id", "username", "email", "first_name", "last_name", "password_hash", "created_at"}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "first_name", "last_name", "password_hash").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash).
		Suffix("returning " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return selectOne[model.User](ctx, r, q, args...)
}

func (r *repository) getUser(ctx context.Context, pred any, args ...any) (model.User, error) {
	q, qArgs, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(pred, args...).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return selectOne[model.User](ctx, r, q, qArgs...)
}

func (r *repository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, "lower(email) = lower(?)", email)
}

func (r *repository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	q, args, err := qb.Update(usersTableName).
		Set("password_hash", hash).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args...)
}

// SearchUsers matches username, first or last name by substring. A two
// word query also matches "first last" in either order.
func (r *repository) SearchUsers(ctx context.Context, excludeID int64, query string) ([]model.User, error) {
	like := contains(query)
	cond := sq.Or{
		sq.ILike{"username": like},
		sq.ILike{"first_name": like},
		sq.ILike{"last_name": like},
	}
	if tokens := strings.Fields(query); len(tokens) == 2 {
		a, b := contains(tokens[0]), contains(tokens[1])
		cond = append(cond,
			sq.And{sq.ILike{"first_name": a}, sq.ILike{"last_name": b}},
			sq.And{sq.ILike{"first_name": b}, sq.ILike{"last_name": a}},
		)
	}
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(cond).
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectAll[model.User](ctx, r, q, args...)
}

func (r *repository) EnsureProfile(ctx context.Context, userID int64) (model.Profile, error) {
	const q = `
	insert into profiles (user_id) values (@user_id)
	on conflict (user_id) do update set user_id = excluded.user_id
	returning user_id, bio, profile_picture, birthplace, current_residence, occupation`
	return selectOne[model.Profile](ctx, r, q, pgx.NamedArgs{"user_id": userID})
}

func (r *repository) UpdateProfile(ctx context.Context, p model.Profile) error {
	const q = `
	update profiles set
		bio = @bio,
		profile_picture = @profile_picture,
		birthplace = @birthplace,
		current_residence = @current_residence,
		occupation = @occupation
	where user_id = @user_id`
	return r.execOne(ctx, q, pgx.NamedArgs{
		"user_id":           p.UserID,
		"bio":               p.Bio,
		"profile_picture":   p.ProfilePicture,
		"birthplace":        p.Birthplace,
		"current_residence": p.CurrentResidence,
		"occupation":        p.Occupation,
	})
}

func (r *repository) SaveResetCode(ctx context.Context, reset model.PasswordReset) error {
	const q = `
	insert into password_resets (user_id, code_hash, expires_at)
	values (@user_id, @code_hash, @expires_at)
	on conflict (user_id) do update
		set code_hash = excluded.code_hash, expires_at = excluded.expires_at`
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"user_id":    reset.UserID,
		"code_hash":  reset.CodeHash,
		"expires_at": reset.ExpiresAt,
	})
	return errors.Wrap(err, "save reset code")
}

func (r *repository) GetResetCode(ctx context.Context, userID int64) (model.PasswordReset, error) {
	q, args, err := qb.Select("user_id", "code_hash", "expires_at").
		From(passwordResetsTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return model.PasswordReset{}, err
	}
	return selectOne[model.PasswordReset](ctx, r, q, args...)
}

func (r *repository) DeleteResetCode(ctx context.Context, userID int64) error {
	q, args, err := qb.Delete(passwordResetsTableName).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, q, args...)
	return err
}
