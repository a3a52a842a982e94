package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCompanies(t *testing.T) {
	companies, err := readCompanies(strings.NewReader(`[
		{"name":"Acme","logo":"acme.png"},
		{"_id":"507f1f77bcf86cd799439011","name":"Globex"}
	]`))
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.True(t, companies[0].ID.IsZero())
	assert.Equal(t, "Acme", companies[0].Extra["name"])
	assert.Equal(t, "507f1f77bcf86cd799439011", companies[1].ID.Hex())
}

func TestReadCompanies_Invalid(t *testing.T) {
	for _, in := range []string{`{"name":"Acme"}`, `[`, ``} {
		_, err := readCompanies(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}
