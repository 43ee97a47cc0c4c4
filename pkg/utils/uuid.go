package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os identificadores curtos das linhas persistidas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// NewRunID identifica uma execução do agregador nos logs e nas respostas
func NewRunID() string {
	return uuid.NewString()
}
