package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJson formata qualquer valor como JSON indentado. O jsoniter só aceita espaços na indentação.
func PrettyJson(in any) (string, error) {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
