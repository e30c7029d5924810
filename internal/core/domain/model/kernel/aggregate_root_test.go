package kernel_test

import (
	"errors"
	"testing"

	"catalog/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAggregateRoot(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	t.Run("should carry the identity", func(t *testing.T) {
		id := kernel.NewUUID()

		root, err := kernel.NewAggregateRoot(id)

		require.NoError(t, err)
		assert.True(t, root.ID().IsEqual(id))
		require.NoError(t, root.ValidateRoot(errNotConstructed))
	})

	t.Run("should reject the zero identity", func(t *testing.T) {
		_, err := kernel.NewAggregateRoot(kernel.UUID{})

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("zero value root reports the supplied error", func(t *testing.T) {
		var root kernel.AggregateRoot

		assert.Equal(t, errNotConstructed, root.ValidateRoot(errNotConstructed))
	})
}
