package catalogrepo_test

import (
	"regexp"
	"strconv"
	"sync"
	"testing"
	"unicode/utf8"

	"deliveryapi/internal/adapters/out/postgres/catalogrepo"
	"deliveryapi/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestCustomerDTO_AddressColumnsFitNormalizedValues(t *testing.T) {
	s, err := schema.Parse(&catalogrepo.CustomerDTO{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	addr, err := kernel.NewAddress("Rua Augusta", "500", "Consolação", "São Paulo", "SP", "01305-000")
	require.NoError(t, err)

	for column, value := range map[string]string{
		"address_postal_code": addr.PostalCode(),
		"address_state":       addr.State(),
	} {
		field := s.LookUpField(column)
		require.NotNil(t, field, "column %s is not mapped", column)

		match := regexp.MustCompile(`\((\d+)\)`).FindStringSubmatch(string(field.DataType))
		require.Len(t, match, 2, "column %s has no declared width: %s", column, field.DataType)
		width, err := strconv.Atoi(match[1])
		require.NoError(t, err)

		assert.LessOrEqual(t, utf8.RuneCountInString(value), width, "%q does not fit %s", value, field.DataType)
	}
}
