package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	diners []models.Diner
	err    error
}

func (s stubSource) ListDiners(context.Context) ([]models.Diner, error) {
	return s.diners, s.err
}

func TestDirectoryLoad_SortsByName(t *testing.T) {
	dir := New(stubSource{diners: sampleDiners()}, zap.NewNop())

	got, err := dir.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"David Kim", "Emily Rodriguez", "Mike Chen", "Sarah Johnson"}, names(got))
}

func TestDirectoryLoad_NameOrderIgnoresCase(t *testing.T) {
	src := stubSource{diners: []models.Diner{
		diner("Zed Park", "zed@x.com", "", "Austin", "TX"),
		diner("alice Wong", "alice@x.com", "", "Austin", "TX"),
		diner("Bob Stone", "bob@x.com", "", "Austin", "TX"),
	}}
	dir := New(src, zap.NewNop())

	got, err := dir.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice Wong", "Bob Stone", "Zed Park"}, names(got))
}

func TestDirectoryLoad_FailureIsEmptyAndLoadError(t *testing.T) {
	dir := New(stubSource{err: errors.New("connection refused")}, zap.NewNop())

	got, err := dir.Load(context.Background())
	assert.Empty(t, got)
	assert.NotNil(t, got)

	var le *apperr.LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "connection refused")
}

func TestDirectorySearch(t *testing.T) {
	dir := New(stubSource{diners: sampleDiners()}, zap.NewNop())

	got, err := dir.Search(context.Background(), FilterCriteria{State: "TX"})
	require.NoError(t, err)
	assert.Equal(t, []string{"David Kim", "Sarah Johnson"}, names(got))
	assert.Len(t, IDs(got), 2)
}
