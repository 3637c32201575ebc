package timeadmin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

func TestTimeAdministrationRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     TimeAdministrationRequest
		invalid []string
	}{
		{"valid", TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 11}, nil},
		{"month zero", TimeAdministrationRequest{Year: 2025, Month: 0}, []string{"month"}},
		{"month thirteen", TimeAdministrationRequest{Year: 2025, Month: 13}, []string{"month"}},
		{"year zero", TimeAdministrationRequest{Year: 0, Month: 5}, []string{"year"}},
		{"both", TimeAdministrationRequest{Year: -1, Month: 99}, []string{"month", "year"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.invalid == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := verrs.ToMap()
			assert.Len(t, fields, len(c.invalid))
			for _, f := range c.invalid {
				assert.Contains(t, fields, f)
			}
		})
	}
}
