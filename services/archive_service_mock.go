package services

import (
	"fmt"
	"sync"
)

// MockArchiveService is an in-memory ArchiveInterface for testing
type MockArchiveService struct {
	storedInvoices map[string][]byte // S3 key to PDF bytes
	mu             sync.RWMutex
}

// NewMockArchiveService creates a new mock invoice archive
func NewMockArchiveService() *MockArchiveService {
	return &MockArchiveService{
		storedInvoices: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global archive instance
func (m *MockArchiveService) SetAsMockForTesting() {
	SetArchiveService(m)
}

// StoreInvoice simulates uploading an invoice PDF
func (m *MockArchiveService) StoreInvoice(filename string, pdf []byte) (string, error) {
	key := fmt.Sprintf("fatture/mock_%s", filename)

	content := make([]byte, len(pdf))
	copy(content, pdf)

	m.mu.Lock()
	m.storedInvoices[key] = content
	m.mu.Unlock()

	return key, nil
}

// GetPresignedURL simulates generating a presigned URL
func (m *MockArchiveService) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.storedInvoices[key]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("invoice not found in mock archive: %s", key)
	}

	return fmt.Sprintf("https://test-bucket.s3.eu-south-1.amazonaws.com/%s?mock=true", key), nil
}

// DeleteInvoice simulates deleting a stored invoice
func (m *MockArchiveService) DeleteInvoice(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.storedInvoices, key)
	m.mu.Unlock()

	return nil
}

// InvoiceExists checks if an invoice exists in mock storage
func (m *MockArchiveService) InvoiceExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.storedInvoices[key]
	return exists
}

// StoredInvoice returns the stored PDF bytes for a key
func (m *MockArchiveService) StoredInvoice(key string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storedInvoices[key]
}

// Clear removes every invoice from mock storage
func (m *MockArchiveService) Clear() {
	m.mu.Lock()
	m.storedInvoices = make(map[string][]byte)
	m.mu.Unlock()
}
