package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stclaire/cardbrain/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("card not found").WithMeta("card_id", "base1-4")
	wrapped := errors.Wrap(base, "failed to resolve hand card")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, "base1-4", errors.GetMeta(wrapped)["card_id"])
}

func TestWrapPlainError(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "redis get failed")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "redis get failed")
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, errors.Wrap(nil, "no-op"))
}

func TestWrapWithCode(t *testing.T) {
	base := fmt.Errorf("record not found")
	err := errors.WrapWithCode(base, errors.CodeNotFound, "card missing from catalog")

	assert.True(t, errors.IsNotFound(err))
	assert.ErrorIs(t, err, base)
}

func TestGetCodeNilIsOK(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors builds nil", func(t *testing.T) {
		require.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("collects fields", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("Resolver").
			InvalidField("Player", "unknown player id").
			Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))

		meta := errors.GetMeta(err)
		require.NotNil(t, meta)
		fields := meta["validation_errors"].(map[string][]string)
		assert.Contains(t, fields, "Resolver")
		assert.Contains(t, fields, "Player")
	})
}
