package configs

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
	CSRFKey []byte
}

func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	authKey, err := decodeKey("APP_AUTH_KEY", env.AppAuthKey)
	if err != nil {
		return nil, err
	}
	encKey, err := decodeKey("APP_ENC_KEY", env.AppEncKey)
	if err != nil {
		return nil, err
	}
	csrfKey, err := decodeKey("APP_CSRF_KEY", env.AppCSRFKey)
	if err != nil {
		return nil, err
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}
	if len(csrfKey) != 32 {
		return nil, fmt.Errorf("APP_CSRF_KEY has invalid length %d after decoding. Must be 32 bytes", len(csrfKey))
	}

	zap.L().Info("Session keys loaded and decoded successfully")
	return &SessionKeys{
		AuthKey: authKey,
		EncKey:  encKey,
		CSRFKey: csrfKey,
	}, nil
}

func decodeKey(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%s environment variable not set", name)
	}
	key, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s from Base64: %w", name, err)
	}
	return key, nil
}

// GenerateSessionKeys writes fresh .env lines for every key to w and to envFilePath.
func GenerateSessionKeys(w io.Writer, envFilePath string) error {
	keys := []struct {
		name string
		size int
	}{
		{"APP_AUTH_KEY", 64},
		{"APP_ENC_KEY", 32},
		{"APP_CSRF_KEY", 32},
	}

	var lines string
	for _, k := range keys {
		raw := securecookie.GenerateRandomKey(k.size)
		if raw == nil {
			return fmt.Errorf("could not generate %s", k.name)
		}
		lines += fmt.Sprintf("%s=%s\n", k.name, base64.URLEncoding.EncodeToString(raw))
	}

	fmt.Fprintln(w, "Generated keys:")
	fmt.Fprint(w, lines)

	if envFilePath == "" {
		return nil
	}
	if err := os.WriteFile(envFilePath, []byte(lines), 0o600); err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}
	fmt.Fprintf(w, "Keys have been written to '%s'. Copy them into your .env file.\n", envFilePath)
	return nil
}
