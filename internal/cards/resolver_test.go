package cards_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	cardrepo "github.com/stclaire/cardbrain/internal/repositories/card"
	cardmock "github.com/stclaire/cardbrain/internal/repositories/card/mock"
	"github.com/stclaire/cardbrain/internal/testutils/builders"
)

func TestResolverFetchesOncePerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	squirtle := builders.PokemonCard("base1-63", "Squirtle", 40, entities.EnergyWater)

	mockRepo := cardmock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), cardrepo.GetInput{CardID: "base1-63"}).
		Return(&cardrepo.GetOutput{Card: squirtle}, nil).
		Times(1)

	r, err := cards.NewResolver(&cards.Config{Repository: mockRepo})
	require.NoError(t, err)

	// Same id queried repeatedly within one pass hits the repo once
	for i := 0; i < 10; i++ {
		got, err := r.Card(ctx, "base1-63")
		require.NoError(t, err)
		assert.Same(t, squirtle, got)
	}
}

func TestResolverWarmMapSkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	water := builders.EnergyCard("water-energy", entities.EnergyWater)

	mockRepo := cardmock.NewMockRepository(ctrl)
	// no Get expectations: warm entries must never hit the repo

	r, err := cards.NewResolver(&cards.Config{
		Repository: mockRepo,
		Warm:       builders.CardSet(water),
	})
	require.NoError(t, err)

	got, err := r.Card(context.Background(), "water-energy")
	require.NoError(t, err)
	assert.Same(t, water, got)
}

func TestResolverConcurrentMissesShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dce := builders.DoubleColorlessCard("dce")

	mockRepo := cardmock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), cardrepo.GetInput{CardID: "dce"}).
		Return(&cardrepo.GetOutput{Card: dce}, nil).
		MaxTimes(2) // singleflight collapses concurrent misses; allow a stray second round

	r, err := cards.NewResolver(&cards.Config{Repository: mockRepo})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Card(context.Background(), "dce")
			assert.NoError(t, err)
			assert.Same(t, dce, got)
		}()
	}
	wg.Wait()
}

func TestResolverMissingCardIsNotFound(t *testing.T) {
	r, err := cards.NewResolver(&cards.Config{
		Warm: builders.CardSet(builders.EnergyCard("fire-energy", entities.EnergyFire)),
	})
	require.NoError(t, err)

	_, err = r.Card(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestResolverRequiresSomeSource(t *testing.T) {
	_, err := cards.NewResolver(&cards.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestWarmBatchOnlyFetchesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fire := builders.EnergyCard("fire-energy", entities.EnergyFire)
	water := builders.EnergyCard("water-energy", entities.EnergyWater)

	mockRepo := cardmock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetBatch(gomock.Any(), cardrepo.GetBatchInput{CardIDs: []string{"water-energy"}}).
		Return(&cardrepo.GetBatchOutput{Cards: map[string]*entities.Card{"water-energy": water}}, nil)

	r, err := cards.NewResolver(&cards.Config{
		Repository: mockRepo,
		Warm:       builders.CardSet(fire),
	})
	require.NoError(t, err)

	require.NoError(t, r.WarmBatch(context.Background(), []string{"fire-energy", "water-energy"}))

	got, err := r.Card(context.Background(), "water-energy")
	require.NoError(t, err)
	assert.Same(t, water, got)
}

func TestMapSource(t *testing.T) {
	m := cards.Map(builders.CardSet(builders.EnergyCard("grass-energy", entities.EnergyGrass)))

	got, err := m.Card(context.Background(), "grass-energy")
	require.NoError(t, err)
	assert.Equal(t, entities.EnergyGrass, got.EnergyType)

	_, err = m.Card(context.Background(), "missing")
	assert.True(t, errors.IsNotFound(err))
}
