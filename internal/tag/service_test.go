package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsEmptyName(t *testing.T) {
	s := NewService(nil)

	_, err := s.Create(1, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}
