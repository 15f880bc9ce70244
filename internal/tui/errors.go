package tui

import (
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
)

const genericAlert = "Что-то пошло не так, попробуйте ещё раз"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// alertMessage turns an operation error into the text of the blocking
// alert: the server's own message when it sent one, a readable network
// hint otherwise.
func alertMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := adapter.ExtractMessage(err, ""); msg != "" {
		return msg
	}
	return humanizeServerUnavailableError(err)
}
