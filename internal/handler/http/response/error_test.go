package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/justification"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHandleError_MissingSchedule(t *testing.T) {
	code, resp := handle(t, attendance.ErrNoShiftSchedule)

	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, resp.Error)

	// A setup problem, not a state conflict the caller can resolve.
	assert.Equal(t, "CONFIGURATION_ERROR", resp.Error.Code)
}

func TestHandleError_StateConflicts(t *testing.T) {
	for _, err := range []error{
		attendance.ErrAlreadyPunchedIn,
		attendance.ErrAlreadyPunchedOut,
		justification.ErrAlreadyDecided,
	} {
		code, resp := handle(t, err)

		assert.Equal(t, http.StatusConflict, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "CONFLICT", resp.Error.Code)
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	code, resp := handle(t, validator.ValidationErrors{
		{Field: "timestamp", Message: "timestamp must be an RFC3339 datetime"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "timestamp must be an RFC3339 datetime", resp.Error.Details["timestamp"])
}

func TestHandleError_Unknown(t *testing.T) {
	code, resp := handle(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}
