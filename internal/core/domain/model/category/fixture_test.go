package category_test

import (
	"strings"
	"testing"

	"catalog/internal/core/domain/model/category"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	faker *gofakeit.Faker
}

// newFixture seeds from 0, which gofakeit treats as "random seed".
func newFixture() fixture {
	return fixture{faker: gofakeit.New(0)}
}

func (f fixture) validName() string {
	return f.faker.LetterN(uint(f.faker.IntRange(category.NameMinLength, category.NameMaxLength)))
}

func (f fixture) validDescription() string {
	return f.faker.LetterN(uint(f.faker.IntRange(1, category.DescriptionMaxLength)))
}

func (f fixture) validCategory(t *testing.T) *category.Category {
	t.Helper()

	c, err := category.New(f.validName(), f.validDescription())
	require.NoError(t, err)
	return c
}

func (f fixture) nameOfLength(n int) string {
	return strings.Repeat("a", n)
}
