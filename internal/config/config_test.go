package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MB_TEST_VALUE", "set")
	t.Setenv("MB_TEST_EMPTY", "")

	assert.Equal(t, "set", GetEnv("MB_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("MB_TEST_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("MB_TEST_UNSET", "default"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("MB_TEST_INT", "42")
	t.Setenv("MB_TEST_BAD_INT", "forty")

	assert.Equal(t, 42, GetIntEnv("MB_TEST_INT", 1))
	assert.Equal(t, 1, GetIntEnv("MB_TEST_BAD_INT", 1))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("MB_TEST_TTL", "15m")
	t.Setenv("MB_TEST_BAD_TTL", "soon")

	assert.Equal(t, 15*time.Minute, GetDurationEnv("MB_TEST_TTL", time.Hour))
	assert.Equal(t, time.Hour, GetDurationEnv("MB_TEST_BAD_TTL", time.Hour))
}

func TestGetListEnv(t *testing.T) {
	t.Setenv("MB_TEST_LIST", "https://moneybag.com.bd, https://sandbox.moneybag.com.bd,")

	assert.Equal(t,
		[]string{"https://moneybag.com.bd", "https://sandbox.moneybag.com.bd"},
		GetListEnv("MB_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, GetListEnv("MB_TEST_LIST_UNSET", []string{"x"}))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "staging")
	assert.False(t, IsProduction())
}
