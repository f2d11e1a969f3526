package trxcode_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/dimasprayoga/pos-backend/internal/utils/trxcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	code, err := trxcode.Generate(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TRX-20240615-[A-Z0-9]{5}$`), code)
}

func TestGenerateDiffersAcrossCalls(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := trxcode.Generate(now)
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from 36^5 possibilities colliding would be astronomically unlikely.
	assert.Len(t, seen, 50)
}
