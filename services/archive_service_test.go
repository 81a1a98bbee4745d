package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockArchiveStoreAndRetrieve(t *testing.T) {
	mock := NewMockArchiveService()
	mock.SetAsMockForTesting()
	defer SetArchiveService(nil)

	key, err := mock.StoreInvoice("fattura_Rossi_2024-01-01_2024-01-31.pdf", []byte("%PDF-1.4 test"))
	assert.NoError(t, err)
	assert.Equal(t, "fatture/mock_fattura_Rossi_2024-01-01_2024-01-31.pdf", key)
	assert.True(t, mock.InvoiceExists(key))
	assert.Equal(t, []byte("%PDF-1.4 test"), mock.StoredInvoice(key))

	// The global accessor hands back the mock
	assert.Equal(t, mock, GetArchiveService())
}

func TestMockArchivePresignedURL(t *testing.T) {
	mock := NewMockArchiveService()

	key, err := mock.StoreInvoice("fattura.pdf", []byte("%PDF"))
	assert.NoError(t, err)

	url, err := mock.GetPresignedURL(key)
	assert.NoError(t, err)
	assert.Contains(t, url, key)

	_, err = mock.GetPresignedURL("fatture/never-stored.pdf")
	assert.Error(t, err)
}

func TestMockArchiveDelete(t *testing.T) {
	mock := NewMockArchiveService()

	key, err := mock.StoreInvoice("fattura.pdf", []byte("%PDF"))
	assert.NoError(t, err)

	assert.NoError(t, mock.DeleteInvoice(key))
	assert.False(t, mock.InvoiceExists(key))
}

func TestMockArchiveStoresACopy(t *testing.T) {
	mock := NewMockArchiveService()

	pdf := []byte("%PDF original")
	key, err := mock.StoreInvoice("fattura.pdf", pdf)
	assert.NoError(t, err)

	// Mutating the caller's buffer must not corrupt the archive
	pdf[0] = 'X'
	assert.Equal(t, byte('%'), mock.StoredInvoice(key)[0])
}
