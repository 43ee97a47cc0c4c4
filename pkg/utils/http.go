package utils

import (
	"github.com/go-resty/resty/v2"
)

// NewHTTPClient cria o cliente resty compartilhado pelos integradores.
// Não define timeout: o prazo de cada chamada vem do contexto.
func NewHTTPClient(baseURL, userAgent string) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return client
}
