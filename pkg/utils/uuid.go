package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID identifica uma execução de carga nos logs e na resposta
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
