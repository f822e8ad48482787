package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransientErrUnwraps(t *testing.T) {
	err := fmt.Errorf("lookup - %w", NewTransientErr("get customer by id", context.DeadlineExceeded))

	var transient *TransientErr
	require.True(t, stderrors.As(err, &transient))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "get customer by id - context deadline exceeded", transient.Error())
}

func TestCacheStaleErrUnwraps(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewCacheStaleErr("delete", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "customer delete succeeded but cache invalidation failed - connection refused", err.Error())
}

func TestValidationErrJSON(t *testing.T) {
	b, err := json.Marshal(NewValidationErr("id", "Customer ID must contain only numbers"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"target":"id","message":"Customer ID must contain only numbers"}`, string(b))
}
