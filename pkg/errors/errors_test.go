// Copyright (c) 2025, Diagpack Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagpack/diagpack/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrCodeInternal, "workspace create failed")
	require.Error(t, err)
	assert.Equal(t, "[INTERNAL] workspace create failed", err.Error())
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(errors.ErrCodeUnavailable, "cannot write bundle", cause)

	assert.Equal(t, "[UNAVAILABLE] cannot write bundle: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrapWithContext(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.WrapWithContext(errors.ErrCodeUnavailable, "archive failed", cause,
		map[string]any{"path": "/tmp/run.zip"})

	require.NotNil(t, err.Context)
	assert.Equal(t, "/tmp/run.zip", err.Context["path"])

	var serr *errors.StructuredError
	assert.True(t, stderrors.As(err.Unwrap(), &serr) == false)
	assert.True(t, stderrors.As(error(err), &serr))
}
