package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shop-inventory/internal/secret"
)

func TestEncryptRecord_OpensWithSameKey(t *testing.T) {
	t.Parallel()

	key, err := secret.GenerateKey()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, encryptRecord(&buf, key, "ebay__sandbox.cert_id", []byte("SBX-1234")))
	assert.Contains(t, buf.String(), "ebay__sandbox.cert_id:")
	assert.Contains(t, buf.String(), "nonce:")
	assert.Contains(t, buf.String(), "ciphertext:")

	records, err := secret.ParseTable(buf.Bytes())
	require.NoError(t, err)

	raw, err := secret.DecodeKey(key)
	require.NoError(t, err)
	s, err := secret.NewStore(raw, records)
	require.NoError(t, err)

	got, err := s.DecryptString("ebay__sandbox.cert_id")
	require.NoError(t, err)
	assert.Equal(t, "SBX-1234", got)
}

func TestEncryptRecord_BadKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := encryptRecord(&buf, "not-a-key", "x", []byte("y"))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestPrintNames_Sorted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printNames(&buf, map[string]secret.Record{
		"postgres__user.shop.password": {},
		"ebay__sandbox.cert_id":        {},
	}))

	assert.Equal(t, "ebay__sandbox.cert_id\npostgres__user.shop.password\n", buf.String())
}
