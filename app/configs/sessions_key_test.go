package configs

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSessionKeys(t *testing.T) {
	auth := base64.URLEncoding.EncodeToString(make([]byte, 64))
	enc := base64.URLEncoding.EncodeToString(make([]byte, 32))

	keys, err := LoadSessionKeys(ENV{AppAuthKey: auth, AppEncKey: enc})
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)

	_, err = LoadSessionKeys(ENV{AppEncKey: enc})
	assert.Error(t, err)

	_, err = LoadSessionKeys(ENV{AppAuthKey: auth, AppEncKey: "%%%"})
	assert.Error(t, err)

	short := base64.URLEncoding.EncodeToString(make([]byte, 10))
	_, err = LoadSessionKeys(ENV{AppAuthKey: auth, AppEncKey: short})
	assert.ErrorContains(t, err, "invalid length")
}

func TestGenerateAndPrintSessionKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.new_keys")
	require.NoError(t, GenerateAndPrintSessionKeys(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	env := ENV{}
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		k, v, _ := strings.Cut(line, "=")
		switch k {
		case "APP_AUTH_KEY":
			env.AppAuthKey = v
		case "APP_ENC_KEY":
			env.AppEncKey = v
		}
	}
	_, err = LoadSessionKeys(env)
	assert.NoError(t, err)
}

func TestDSN(t *testing.T) {
	env := ENV{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBName: "shop"}
	assert.Equal(t, "u:p@tcp(h:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local", env.DSN())
}

func TestLoadEnvWarnings(t *testing.T) {
	t.Setenv("RELAY_TIMEOUT", "soon")
	t.Setenv("STORE_BACKEND", "Memory")

	env := LoadEnv()
	assert.Equal(t, 10*time.Second, env.RelayTimeout)
	assert.Equal(t, StoreBackendMemory, env.StoreBackend)
	assert.Contains(t, env.Warnings, `invalid RELAY_TIMEOUT "soon", using 10s`)

	t.Setenv("RELAY_TIMEOUT", "3s")
	env = LoadEnv()
	assert.Equal(t, 3*time.Second, env.RelayTimeout)
	assert.NotContains(t, env.Warnings, `invalid RELAY_TIMEOUT "soon", using 10s`)
}
