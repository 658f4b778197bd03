package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

var (
	ErrInvalidPhone = errors.New("phone number must contain digits")
)

// ShareService builds deep links for sending plan notifications to clients
// through external messengers. No data flows back in; the link is handed
// to the UI which opens it.
type ShareService interface {
	WhatsAppLink(message, phone string) (string, error)
}

type shareService struct{}

// NewShareService creates a new instance of shareService.
func NewShareService() ShareService {
	return &shareService{}
}

// WhatsAppLink produces a wa.me deep link with the message URL-encoded and
// the phone number reduced to digits (wa.me rejects +, spaces and dashes).
func (s *shareService) WhatsAppLink(message, phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", ErrInvalidPhone
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message)), nil
}
