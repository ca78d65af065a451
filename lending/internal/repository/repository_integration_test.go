//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/lending/migrations"
	"github.com/Astemirdum/book-lending/pkg/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("lending"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := postgres.Connect(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.MigrateUp(pool, migrations.MigrationFiles, ""))

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestRepository_Lending(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	alice, err := repo.CreateUser(ctx, model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, model.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, model.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, errs.ErrConflict)

	t.Run("friendship", func(t *testing.T) {
		f, err := repo.CreateFriendship(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, model.FriendshipPending, f.Status)

		_, err = repo.CreateFriendship(ctx, bob.ID, alice.ID)
		require.ErrorIs(t, err, errs.ErrConflict)

		_, err = repo.TransitionFriendship(ctx, f.ID, alice.ID, model.FriendshipPending, model.FriendshipAccepted)
		require.ErrorIs(t, err, errs.ErrNotFound, "sender cannot answer")

		f, err = repo.TransitionFriendship(ctx, f.ID, bob.ID, model.FriendshipPending, model.FriendshipAccepted)
		require.NoError(t, err)
		require.Equal(t, model.FriendshipAccepted, f.Status)

		_, err = repo.TransitionFriendship(ctx, f.ID, bob.ID, model.FriendshipPending, model.FriendshipAccepted)
		require.ErrorIs(t, err, errs.ErrNotFound)

		ok, err := repo.FriendshipExists(ctx, bob.ID, alice.ID, model.FriendshipAccepted)
		require.NoError(t, err)
		require.True(t, ok)

		friends, err := repo.ListFriends(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		require.Equal(t, "bob", friends[0].Username)
	})

	t.Run("book request", func(t *testing.T) {
		book, err := repo.CreateBook(ctx, model.Book{OwnerID: bob.ID, Title: "Dune", Author: "Herbert", Condition: model.ConditionGood, Available: true})
		require.NoError(t, err)

		due := time.Now().UTC().Truncate(24 * time.Hour)
		br, err := repo.CreateBookRequest(ctx, model.BookRequest{BookID: book.ID, BorrowerID: alice.ID, ReturnDate: due})
		require.NoError(t, err)

		pending, err := repo.HasPendingBookRequest(ctx, book.ID, alice.ID)
		require.NoError(t, err)
		require.True(t, pending)

		accept := model.BookRequestTransition{ID: br.ID, OwnerID: alice.ID, From: model.RequestPending, To: model.RequestAccepted}
		_, err = repo.TransitionBookRequest(ctx, accept)
		require.ErrorIs(t, err, errs.ErrNotFound, "borrower cannot accept")

		accept.OwnerID = bob.ID
		lend := func(tr model.BookRequestTransition) error {
			return repo.InTx(ctx, func(tx repository.Repository) error {
				if _, err := tx.TransitionBookRequest(ctx, tr); err != nil {
					return err
				}
				return tx.MarkBookLent(ctx, book.ID)
			})
		}
		require.NoError(t, lend(accept))

		carol, err := repo.CreateUser(ctx, model.User{Username: "carol", Email: "carol@example.com", PasswordHash: "x"})
		require.NoError(t, err)
		second, err := repo.CreateBookRequest(ctx, model.BookRequest{BookID: book.ID, BorrowerID: carol.ID, ReturnDate: due})
		require.NoError(t, err)
		err = lend(model.BookRequestTransition{ID: second.ID, OwnerID: bob.ID, From: model.RequestPending, To: model.RequestAccepted})
		require.ErrorIs(t, err, errs.ErrNotFound, "a lent book cannot be lent again")
		still, err := repo.GetBookRequest(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, model.RequestPending, still.Status, "rolled back")

		got, err := repo.GetBook(ctx, book.ID)
		require.NoError(t, err)
		require.False(t, got.Available)
		require.Equal(t, "bob", got.OwnerUsername)

		dueList, err := repo.ListDueBookRequests(ctx, due.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, dueList, 1)
		require.Equal(t, "Dune", dueList[0].BookTitle)
		require.Equal(t, bob.ID, dueList[0].OwnerID)

		since := time.Now().UTC().Add(-time.Minute)
		_, err = repo.CreateNotification(ctx, model.Notification{
			UserID:               alice.ID,
			Type:                 model.NotifyDueReminder,
			Message:              "due",
			RelatedBookRequestID: &br.ID,
		})
		require.NoError(t, err)
		reminded, err := repo.HasReminderSince(ctx, br.ID, since)
		require.NoError(t, err)
		require.True(t, reminded)

		n, err := repo.CountUnreadNotifications(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		marked, err := repo.MarkAllNotificationsRead(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), marked)
	})

	t.Run("search", func(t *testing.T) {
		ann, err := repo.CreateUser(ctx, model.User{Username: "user_one", Email: "ann@example.com", FirstName: "Ann", LastName: "User", PasswordHash: "x"})
		require.NoError(t, err)
		ben, err := repo.CreateUser(ctx, model.User{Username: "user_two", Email: "ben@example.com", FirstName: "Ben", LastName: "Smith", PasswordHash: "x"})
		require.NoError(t, err)
		zed, err := repo.CreateUser(ctx, model.User{Username: "zed", Email: "zed@example.com", FirstName: "User", LastName: "Zed", PasswordHash: "x"})
		require.NoError(t, err)

		usernames := func(query string) []string {
			users, err := repo.SearchUsers(ctx, ann.ID, query)
			require.NoError(t, err)
			out := []string{}
			for _, u := range users {
				out = append(out, u.Username)
			}
			return out
		}
		require.Equal(t, []string{"user_two", "zed"}, usernames("User"), "searcher excluded")
		require.Equal(t, []string{"user_two"}, usernames("Ben Smith"))
		require.Equal(t, []string{"user_two"}, usernames("smith ben"))
		require.Empty(t, usernames("%"))
		require.Equal(t, []string{"user_two"}, usernames("_"))

		f, err := repo.CreateFriendship(ctx, ann.ID, ben.ID)
		require.NoError(t, err)
		_, err = repo.TransitionFriendship(ctx, f.ID, ben.ID, model.FriendshipPending, model.FriendshipAccepted)
		require.NoError(t, err)
		for _, b := range []model.Book{
			{OwnerID: ben.ID, Title: "Go in Action", Author: "Kennedy", Genre: "tech", Condition: model.ConditionGood, Available: true},
			{OwnerID: ben.ID, Title: "Go Lent", Author: "Nobody", Genre: "tech", Condition: model.ConditionGood},
			{OwnerID: zed.ID, Title: "Go Alone", Author: "Stranger", Genre: "tech", Condition: model.ConditionGood, Available: true},
		} {
			_, err := repo.CreateBook(ctx, b)
			require.NoError(t, err)
		}

		books, err := repo.SearchFriendBooks(ctx, ann.ID, "go")
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Equal(t, "Go in Action", books[0].Title)
		require.Equal(t, "user_two", books[0].OwnerUsername)

		books, err = repo.SearchFriendBooks(ctx, ann.ID, "TECH")
		require.NoError(t, err)
		require.Len(t, books, 1)

		books, err = repo.SearchFriendBooks(ctx, ann.ID, "%")
		require.NoError(t, err)
		require.Empty(t, books)
	})

	t.Run("rating is replaced", func(t *testing.T) {
		book, err := repo.CreateBook(ctx, model.Book{OwnerID: bob.ID, Title: "Emma", Condition: model.ConditionNew, Available: true})
		require.NoError(t, err)
		_, err = repo.UpsertRating(ctx, alice.ID, book.ID, model.RatingLike)
		require.NoError(t, err)
		_, err = repo.UpsertRating(ctx, alice.ID, book.ID, model.RatingDislike)
		require.NoError(t, err)

		likes, dislikes, err := repo.CountRatings(ctx, book.ID)
		require.NoError(t, err)
		require.Zero(t, likes)
		require.Equal(t, 1, dislikes)
	})
}
