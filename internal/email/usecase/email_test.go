package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/internal/email"
	"rag-assistant/internal/model"
	"rag-assistant/pkg/log"
)

type fakeRepo struct {
	latest    *model.Email
	recent    []model.Email
	lastLimit int
}

func (f *fakeRepo) ListRecent(ctx context.Context, limit int) ([]model.Email, error) {
	f.lastLimit = limit
	return f.recent, nil
}

func (f *fakeRepo) ListFrom(ctx context.Context, sender string, limit int) ([]model.Email, error) {
	return f.recent, nil
}

func (f *fakeRepo) LatestFrom(ctx context.Context, sender string) (*model.Email, error) {
	return f.latest, nil
}

func TestLatest(t *testing.T) {
	body := strings.Repeat("ü", 600)
	repo := &fakeRepo{latest: &model.Email{
		ID:       "m1",
		Sender:   "Alice <alice@example.com>",
		To:       "me@gmail.com",
		Subject:  "Trip plans",
		Body:     body,
		Date:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Provider: "gmail",
	}}
	uc := New(repo, log.NewNop())

	out, err := uc.Latest(context.Background(), " Alice ")
	require.NoError(t, err)

	assert.Equal(t, "Found an email from Alice <alice@example.com> with subject 'Trip plans'.", out.Answer)
	require.Len(t, out.Sources, 1)
	assert.Equal(t, strings.Repeat("ü", 500), out.Sources[0].BodyPreview)
	assert.Equal(t, "gmail", out.Sources[0].Provider)
}

func TestLatestNotFound(t *testing.T) {
	uc := New(&fakeRepo{}, log.NewNop())

	out, err := uc.Latest(context.Background(), "Bob")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find any recent emails from 'Bob'.", out.Answer)
	assert.Equal(t, []email.Source{}, out.Sources)
}

func TestLatestErrors(t *testing.T) {
	_, err := New(&fakeRepo{}, log.NewNop()).Latest(context.Background(), "  ")
	assert.ErrorIs(t, err, email.ErrEmptySender)

	_, err = New(nil, log.NewNop()).Latest(context.Background(), "Bob")
	assert.ErrorIs(t, err, email.ErrMailNotConfigured)

	_, err = New(nil, log.NewNop()).Recent(context.Background(), 3)
	assert.ErrorIs(t, err, email.ErrMailNotConfigured)
}

func TestRecentLimit(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, log.NewNop())

	for in, want := range map[int]int{0: email.DefaultRecentLimit, -3: email.DefaultRecentLimit, 7: 7, 1000: email.MaxRecentLimit} {
		_, err := uc.Recent(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, want, repo.lastLimit)
	}
}
