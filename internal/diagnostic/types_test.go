package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Err(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Err())

	d.AddWarning(CodeCorpusTruncated, "max_items", "kept 2 of 3 items")
	assert.True(t, d.IsValid(), "warnings do not invalidate")

	d.AddConfigError(CodeThresholdRange, "threshold", "must be within [0, 100], got 101")
	require.False(t, d.IsValid())

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.NotErrorIs(t, err, ErrInput)
	assert.Equal(t,
		"configuration error: threshold: [threshold_out_of_range] must be within [0, 100], got 101",
		err.Error())

	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "threshold", derr.Field)
	assert.Equal(t, NoIndex, derr.Index)
}

func TestDiagnostics_ErrJoinsAll(t *testing.T) {
	var d Diagnostics
	d.AddConfigError(CodeLimitNotPositive, "limit_per_query", "must be positive, got 0")
	d.AddInputError(CodeInvalidUTF8, "corpus", 3, "entry is not valid UTF-8")

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, ErrInput)
	assert.Contains(t, err.Error(), "input error: corpus #3: [invalid_utf8] entry is not valid UTF-8")
}

func TestError_IsByCode(t *testing.T) {
	var d Diagnostics
	d.AddInputError(CodeNullEntry, "corpus.yaml", 2, "entry is null")
	err := fmt.Errorf("loading corpus: %w", d.Err())

	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, &Error{Diagnostic{Kind: KindInput, Code: CodeNullEntry}})
	assert.NotErrorIs(t, err, &Error{Diagnostic{Kind: KindInput, Code: CodeInvalidUTF8}})
	assert.False(t, errors.Is(err, errors.New("entry is null")))
}

func TestKindAndSeverity_String(t *testing.T) {
	assert.Equal(t, "Configuration", KindConfiguration.String())
	assert.Equal(t, "Input", KindInput.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())

	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(7).String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "x", Message: "msg", Index: NoIndex}
	assert.Equal(t, "[x] msg", d.String())

	d = Diagnostic{Message: "msg", Field: "pool", Index: 0}
	assert.Equal(t, "pool #0: msg", d.String())
}
