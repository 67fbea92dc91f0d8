package member

import (
	"errors"
	"testing"

	"shop/domain/shared"
)

func TestNewMember(t *testing.T) {
	addr := shared.NewAddress("Seoul", "Teheran-ro 1", "06000")
	m, err := NewMember("kim", addr)
	if err != nil {
		t.Fatalf("NewMember() error = %v", err)
	}
	if m.ID() == "" {
		t.Error("ID() is empty")
	}
	if m.Name() != "kim" {
		t.Errorf("Name() = %q, want kim", m.Name())
	}
	if !m.Address().Equals(addr) {
		t.Errorf("Address() = %v, want %v", m.Address(), addr)
	}
}

func TestNewMemberEmptyName(t *testing.T) {
	_, err := NewMember("", shared.Address{})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("NewMember() error = %v, want ErrInvalidInput", err)
	}
}
