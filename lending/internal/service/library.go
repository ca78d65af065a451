package service

import (
	"context"

	"github.com/Astemirdum/book-lending/lending/internal/errs"
	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"golang.org/x/sync/errgroup"
)

func (s *Service) Library(ctx context.Context, me auth.Identity, username string) (model.LibraryView, error) {
	owner, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.LibraryView{}, err
	}
	books, err := s.repo.ListBooksByOwner(ctx, owner.ID)
	if err != nil {
		return model.LibraryView{}, err
	}
	return model.LibraryView{Owner: owner, Books: books, IsOwner: owner.ID == me.UserID}, nil
}

// AddBook puts a new, available book in my library.
func (s *Service) AddBook(ctx context.Context, me auth.Identity, form model.BookForm) (model.Book, error) {
	return s.repo.CreateBook(ctx, model.Book{
		OwnerID:     me.UserID,
		Title:       form.Title,
		Author:      form.Author,
		Genre:       form.Genre,
		Condition:   form.Condition,
		CoverImage:  form.CoverImage,
		Description: form.Description,
		Available:   true,
	})
}

// OwnBook returns one of my books. Books of other users are not found.
func (s *Service) OwnBook(ctx context.Context, me auth.Identity, id int64) (model.Book, error) {
	b, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	if b.OwnerID != me.UserID {
		return model.Book{}, errs.ErrNotFound
	}
	return b.Book, nil
}

// EditBook updates the descriptive fields; availability is driven by
// lending only.
func (s *Service) EditBook(ctx context.Context, me auth.Identity, id int64, form model.BookForm) (model.Book, error) {
	return s.repo.UpdateBook(ctx, model.Book{
		ID:          id,
		OwnerID:     me.UserID,
		Title:       form.Title,
		Author:      form.Author,
		Genre:       form.Genre,
		Condition:   form.Condition,
		CoverImage:  form.CoverImage,
		Description: form.Description,
	})
}

func (s *Service) DeleteBook(ctx context.Context, me auth.Identity, id int64) error {
	return s.repo.DeleteBook(ctx, id, me.UserID)
}

func (s *Service) BookDetail(ctx context.Context, me auth.Identity, id int64) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	out := model.BookDetail{Book: book, IsOwner: book.OwnerID == me.UserID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Reviews, err = s.repo.ListReviews(gctx, book.ID)
		return err
	})
	g.Go(func() (err error) {
		out.IsFriend, err = s.AreFriends(gctx, me.UserID, book.OwnerID)
		return err
	})
	g.Go(func() (err error) {
		out.LikeCount, out.DislikeCount, err = s.repo.CountRatings(gctx, book.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BookDetail{}, err
	}
	return out, nil
}
