package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-lending/lending/internal/model"
	"github.com/Astemirdum/book-lending/pkg/auth"
)

// Search looks up users and friends' available books. An empty query
// yields empty results; a scope outside all|users|books matches nothing.
func (s *Service) Search(ctx context.Context, me auth.Identity, query string, scope model.SearchScope) (model.SearchResult, error) {
	if scope == "" {
		scope = model.ScopeAll
	}
	out := model.SearchResult{
		Query: query,
		Scope: scope,
		Users: []model.UserResult{},
		Books: []model.BookWithOwner{},
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return out, nil
	}

	if scope.Users() {
		users, err := s.repo.SearchUsers(ctx, me.UserID, query)
		if err != nil {
			return model.SearchResult{}, err
		}
		ids := make([]int64, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}
		statuses, err := s.repo.FriendshipStatuses(ctx, me.UserID, ids)
		if err != nil {
			return model.SearchResult{}, err
		}
		for _, u := range users {
			out.Users = append(out.Users, model.UserResult{User: u, FriendshipStatus: statuses[u.ID]})
		}
	}
	if scope.Books() {
		books, err := s.repo.SearchFriendBooks(ctx, me.UserID, query)
		if err != nil {
			return model.SearchResult{}, err
		}
		out.Books = books
	}
	return out, nil
}
