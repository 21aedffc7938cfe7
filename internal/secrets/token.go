package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "hermes-jobs"

// GetImportToken loads the bearer token the crawler must present on the
// import endpoints.
func GetImportToken(account string) (string, error) {
	if strings.TrimSpace(account) != "" {
		token, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(token) != "" {
			return token, nil
		}
	}
	return "", errors.New("import token not found in keychain")
}

func SetImportToken(account, token string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func DeleteImportToken(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
