package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		input   Registration
		wantErr error
		check   func(t *testing.T, s *model.Session)
	}{
		{
			name: "donor with blood type",
			input: Registration{
				Name: "John Smith", Email: "john@example.com", Password: "pw",
				Role: model.RoleDonor, BloodType: model.BloodTypeONeg, OrganizationName: "ignored",
			},
			check: func(t *testing.T, s *model.Session) {
				assert.Equal(t, model.BloodTypeONeg, s.BloodType)
				assert.Empty(t, s.OrganizationName)
			},
		},
		{
			name: "hospital with organisation",
			input: Registration{
				Name: "Jo", Email: "jo@general.example", Password: "pw",
				Role: model.RoleHospital, OrganizationName: "General Hospital", BloodType: model.BloodTypeAPos,
			},
			check: func(t *testing.T, s *model.Session) {
				assert.Equal(t, "General Hospital", s.DisplayName())
				assert.Empty(t, s.BloodType)
			},
		},
		{
			name:    "missing password",
			input:   Registration{Name: "A", Email: "a@example.com", Role: model.RoleDonor, BloodType: model.BloodTypeAPos},
			wantErr: ErrMissingField,
		},
		{
			name:    "donor without blood type",
			input:   Registration{Name: "A", Email: "a@example.com", Password: "pw", Role: model.RoleDonor},
			wantErr: ErrMissingField,
		},
		{
			name:    "blood bank without organisation",
			input:   Registration{Name: "A", Email: "a@example.com", Password: "pw", Role: model.RoleBloodBank},
			wantErr: ErrMissingField,
		},
		{
			name:    "bad email",
			input:   Registration{Name: "A", Email: "not-an-email", Password: "pw", Role: model.RoleRecipient, BloodType: model.BloodTypeBNeg},
			wantErr: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := &mockDB{}

			session, err := Register(context.Background(), database, zap.NewNop(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, database.session)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.ID)
			assert.Equal(t, tt.input.Role, session.Role)
			require.NotNil(t, database.session)
			assert.Equal(t, *session, *database.session)
			tt.check(t, session)
		})
	}
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	database := &mockDB{}

	_, err := Login(ctx, database, zap.NewNop(), Credentials{Email: "a@example.com", Role: model.RoleRecipient})
	assert.ErrorIs(t, err, ErrMissingField)

	session, err := Login(ctx, database, zap.NewNop(), Credentials{Email: "a@example.com", Password: "pw", Role: model.RoleRecipient})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", session.DisplayName())

	current, err := CurrentSession(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)

	require.NoError(t, Logout(ctx, database, zap.NewNop()))
	require.NoError(t, Logout(ctx, database, zap.NewNop()))

	_, err = CurrentSession(ctx, database)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogin_ProfileFields(t *testing.T) {
	ctx := context.Background()
	database := &mockDB{}

	session, err := Login(ctx, database, zap.NewNop(), Credentials{
		Email: "dan@example.com", Password: "pw", Role: model.RoleDonor,
		Name: "Dan", BloodType: model.BloodTypeONeg, OrganizationName: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dan", session.DisplayName())
	assert.Equal(t, model.BloodTypeONeg, session.BloodType)
	assert.Empty(t, session.OrganizationName)

	input, err := AppointmentFromForm(*session, DonationForm{Date: "2024-02-10", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, model.BloodTypeONeg, input.BloodType)

	session, err = Login(ctx, database, zap.NewNop(), Credentials{
		Email: "ops@general.org", Password: "pw", Role: model.RoleHospital,
		BloodType: model.BloodTypeAPos, OrganizationName: "General Hospital",
	})
	require.NoError(t, err)
	assert.Equal(t, "General Hospital", session.DisplayName())
	assert.Empty(t, session.BloodType)

	_, err = Login(ctx, database, zap.NewNop(), Credentials{Email: "a@example.com", Password: "pw", Role: model.RoleDonor, BloodType: "C+"})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestRequireRole(t *testing.T) {
	ctx := context.Background()
	database := &mockDB{}

	_, err := RequireRole(ctx, database, model.RoleHospital)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.EqualError(t, err, "please login to access this page")

	database.session = &model.Session{ID: "u1", Role: model.RoleDonor, Email: "d@example.com"}

	_, err = RequireRole(ctx, database, model.RoleHospital)
	assert.ErrorIs(t, err, ErrForbiddenRole)
	assert.Contains(t, err.Error(), "only accessible to hospitals")

	session, err := RequireRole(ctx, database, model.RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.ID)

	session, err = RequireRole(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, model.RoleDonor, session.Role)
}
