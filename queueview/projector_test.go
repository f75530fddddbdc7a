package queueview

import (
	"errors"
	"testing"

	"canteen-api/models"
	"canteen-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	orders map[string]*models.Order
	err    error
}

func (f *fakeLookup) GetByToken(token string) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.orders[token]; ok {
		return o, nil
	}
	return nil, repository.ErrOrderNotFound
}

func TestStatusOfKnownToken(t *testing.T) {
	p := NewProjector(&fakeLookup{orders: map[string]*models.Order{
		"1234": {Token: "1234", OrderStatus: models.StatusReadyToServe},
	}})

	status, err := p.StatusOf("1234")
	require.NoError(t, err)
	assert.True(t, status.Found)
	assert.Equal(t, models.StatusReadyToServe, status.OrderStatus)
}

func TestStatusOfUnknownTokenIsNotAnError(t *testing.T) {
	p := NewProjector(&fakeLookup{orders: map[string]*models.Order{}})

	status, err := p.StatusOf("9999")
	require.NoError(t, err)
	assert.False(t, status.Found)
	assert.Empty(t, status.OrderStatus)
}

func TestStatusOfPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	p := NewProjector(&fakeLookup{err: boom})

	_, err := p.StatusOf("1234")
	assert.ErrorIs(t, err, boom)
}
