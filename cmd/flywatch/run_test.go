// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/flywatch/internal/errors"
)

func TestRun_HeadlessReportsAPIListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	path := filepath.Join(t.TempDir(), "flywatch.hcl")
	body := fmt.Sprintf(`
api {
  enabled = true
  listen  = %q
}
logging { level = "error" }
`, busy.Addr().String())
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx, options{configPath: path, headless: true})
	require.Error(t, err)
	assert.Equal(t, errors.KindUnavailable, errors.GetKind(err))
	assert.NoError(t, ctx.Err(), "run returned because the API failed, not on timeout")
}

func TestFailure(t *testing.T) {
	fatal := make(chan error, 1)
	assert.NoError(t, failure(fatal))

	fatal <- errors.New(errors.KindUnavailable, "boom")
	assert.EqualError(t, failure(fatal), "boom")
}
