package workday

import (
	"testing"

	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{64, "1:04"},
		{480, "8:00"},
		{-30, "-0:30"},
		{-720, "-12:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatMinutes(c.minutes))
	}
}

func TestEditRequest_Validate(t *testing.T) {
	s := func(v string) *string { return &v }

	req := EditRequest{Updates: map[string]*string{
		"entrada1": s("08:00"),
		"saida1":   nil,
	}}
	assert.NoError(t, req.Validate())

	req = EditRequest{Updates: map[string]*string{"entrada1": s("25:00")}}
	err := req.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "entrada1", verrs[0].Field)

	req = EditRequest{Updates: map[string]*string{"worked_minutes": s("10")}}
	err = req.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "worked_minutes", verrs[0].Field)
}

func TestReconcileRequest_Validate(t *testing.T) {
	req := ReconcileRequest{StartDate: "2025-12-01", EndDate: "2025-12-31"}
	assert.NoError(t, req.Validate())

	req = ReconcileRequest{StartDate: "2025-12-31", EndDate: "2025-12-01"}
	assert.Error(t, req.Validate())

	req = ReconcileRequest{StartDate: "", EndDate: "2025-12-01"}
	assert.Error(t, req.Validate())
}
