package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
)

func TestStudentColumn_SQLName(t *testing.T) {
	tests := []struct {
		column  StudentColumn
		want    string
		wantErr bool
	}{
		{StudentColumnUUID, "uuid", false},
		{StudentColumnCedula, "cedula", false},
		{StudentColumnStudentID, "studentId", false},
		{StudentColumn(0), "", true},
		{StudentColumn(42), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.column.String(), func(t *testing.T) {
			got, err := tt.column.sqlName()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidLookupColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmployeeColumn_SQLName(t *testing.T) {
	name, err := EmployeeColumnCedula.sqlName()
	require.NoError(t, err)
	assert.Equal(t, "cedula", name)

	_, err = EmployeeColumn(7).sqlName()
	assert.ErrorIs(t, err, apperrors.ErrInvalidLookupColumn)
	assert.Equal(t, "EmployeeColumn(7)", EmployeeColumn(7).String())
}
