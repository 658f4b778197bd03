package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	s := NewShareService()

	link, err := s.WhatsAppLink("Your new plan is ready!", "+1 (555) 000-1111")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/15550001111?text=Your+new+plan+is+ready%21", link)
}

func TestWhatsAppLinkStripsNonDigits(t *testing.T) {
	s := NewShareService()

	link, err := s.WhatsAppLink("hi", "+385-91-234-5678")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/385912345678?text=hi", link)
}

func TestWhatsAppLinkRejectsDigitlessPhone(t *testing.T) {
	s := NewShareService()

	_, err := s.WhatsAppLink("hi", "not a number")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = s.WhatsAppLink("hi", "")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
