package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/lending/internal/service"
	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	repo_mocks "github.com/Astemirdum/book-lending/lending/internal/repository/mocks"
)

var (
	alice = auth.Identity{UserID: 1, Username: "alice"}
	bob   = auth.Identity{UserID: 2, Username: "bob"}
	now   = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
)

type publisher struct {
	mu     sync.Mutex
	events []kafka.Event
}

func (p *publisher) Publish(_ context.Context, ev kafka.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *publisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	repo *repo_mocks.MockRepository
	pub  *publisher
	svc  *service.Service
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := &publisher{}
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithAuth(auth.Config{Secret: "test", TTL: time.Hour, BcryptCost: bcrypt.MinCost}),
	}, opts...)
	return &fixture{
		repo: repo,
		pub:  pub,
		svc:  service.NewService(repo, pub, zap.NewNop(), opts...),
	}
}

// inTx runs the transaction body against the same mock.
func (f *fixture) inTx() *gomock.Call {
	return f.repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Repository) error) error {
			return fn(f.repo)
		})
}

func ref(id int64) *int64 { return &id }

func identity(id int64) auth.Identity {
	switch id {
	case alice.UserID:
		return alice
	case bob.UserID:
		return bob
	}
	return auth.Identity{UserID: id, Username: "carol"}
}
