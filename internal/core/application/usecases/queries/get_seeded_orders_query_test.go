package queries_test

import (
	"testing"

	"seeder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetSeededOrdersQuery(t *testing.T) {
	query := queries.NewGetSeededOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetSeededOrdersQuery_Validate(t *testing.T) {
	var query queries.GetSeededOrdersQuery

	err := query.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetSeededOrdersQueryIsNotConstructed)
}
